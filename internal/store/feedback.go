package store

import (
	"sync"
	"time"
)

// Feedback statuses.
const (
	FeedbackPending  = "pending"
	FeedbackReviewed = "reviewed"
)

// FeedbackEntry is a single free-text submission awaiting admin review.
type FeedbackEntry struct {
	ID        int
	UserID    int64
	Text      string
	Status    string
	CreatedAt time.Time
}

// Feedback is an append-only in-memory feedback store. Ids come from a
// monotonically increasing counter, decoupled from storage position, so
// entries could be removed later without shifting ids.
type Feedback struct {
	mu      sync.Mutex
	entries map[int]*FeedbackEntry
	nextID  int
	now     func() time.Time
}

// NewFeedback creates an empty feedback store.
func NewFeedback() *Feedback {
	return &Feedback{
		entries: make(map[int]*FeedbackEntry),
		now:     time.Now,
	}
}

// Add appends a pending entry and returns its id. Ids start at 0 and
// increase strictly with each call.
func (s *Feedback) Add(userID int64, text string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.entries[id] = &FeedbackEntry{
		ID:        id,
		UserID:    userID,
		Text:      text,
		Status:    FeedbackPending,
		CreatedAt: s.now(),
	}
	return id
}

// Get returns a copy of the entry, if present.
func (s *Feedback) Get(id int) (FeedbackEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return FeedbackEntry{}, false
	}
	return *e, true
}

// Pending returns copies of all entries awaiting review, in id order.
func (s *Feedback) Pending() []FeedbackEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []FeedbackEntry
	for id := 0; id < s.nextID; id++ {
		if e, ok := s.entries[id]; ok && e.Status == FeedbackPending {
			out = append(out, *e)
		}
	}
	return out
}

// UpdateStatus sets an entry's status. Returns false for an unknown id.
func (s *Feedback) UpdateStatus(id int, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return false
	}
	e.Status = status
	return true
}
