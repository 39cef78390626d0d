package store

import (
	"fmt"
	"sync"
	"time"
)

// Order statuses.
const (
	OrderPending   = "pending"
	OrderApproved  = "approved"
	OrderRejected  = "rejected"
	OrderCompleted = "completed"
)

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentConfirmed = "confirmed"
	PaymentRejected  = "rejected"
)

// Order tracks a single purchase request through its lifecycle.
// Orders live in memory only and are lost on restart.
type Order struct {
	ID                      string
	UserID                  int64
	Service                 string
	Status                  string
	PaymentMethod           string
	PaymentStatus           string
	PaymentConfirmationTime time.Time
	CreatedAt               time.Time
	LastUpdated             time.Time
}

// Orders is an in-memory order store guarded by a single mutex.
type Orders struct {
	mu     sync.Mutex
	orders map[string]*Order
	now    func() time.Time
}

// NewOrders creates an empty order store.
func NewOrders() *Orders {
	return &Orders{
		orders: make(map[string]*Order),
		now:    time.Now,
	}
}

// Create registers a new pending order for the user and returns its id.
// Ids combine a second-resolution timestamp with the user id; a numeric
// suffix is appended when two orders land in the same second.
func (s *Orders) Create(userID int64, service string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	base := fmt.Sprintf("ORD_%s_%d", now.Format("20060102150405"), userID)
	id := base
	for n := 1; ; n++ {
		if _, taken := s.orders[id]; !taken {
			break
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}

	s.orders[id] = &Order{
		ID:        id,
		UserID:    userID,
		Service:   service,
		Status:    OrderPending,
		CreatedAt: now,
	}
	return id
}

// Get returns a copy of the order, if present.
func (s *Orders) Get(orderID string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return Order{}, false
	}
	return *o, true
}

// UpdateStatus moves the order to the given status. Returns false for
// an unknown order id.
func (s *Orders) UpdateStatus(orderID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return false
	}
	o.Status = status
	o.LastUpdated = s.now()
	return true
}

// UpdatePaymentMethod records the chosen payment method and resets the
// payment branch: status back to pending, confirmation time cleared.
func (s *Orders) UpdatePaymentMethod(orderID, method string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return false
	}
	o.PaymentMethod = method
	o.PaymentStatus = PaymentPending
	o.PaymentConfirmationTime = time.Time{}
	o.LastUpdated = s.now()
	return true
}

// UpdatePaymentStatus sets the payment status. The confirmation time is
// stamped only for a confirmation; any other status clears it.
func (s *Orders) UpdatePaymentStatus(orderID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return false
	}
	o.PaymentStatus = status
	if status == PaymentConfirmed {
		o.PaymentConfirmationTime = s.now()
	} else {
		o.PaymentConfirmationTime = time.Time{}
	}
	o.LastUpdated = s.now()
	return true
}

// ByUser returns copies of all orders belonging to the user, keyed by id.
func (s *Orders) ByUser(userID int64) map[string]Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Order)
	for id, o := range s.orders {
		if o.UserID == userID {
			out[id] = *o
		}
	}
	return out
}

// PendingByUser returns the user's orders still awaiting admin review.
func (s *Orders) PendingByUser(userID int64) map[string]Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Order)
	for id, o := range s.orders {
		if o.UserID == userID && o.Status == OrderPending {
			out[id] = *o
		}
	}
	return out
}
