package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackIDsStrictlyIncreasingFromZero(t *testing.T) {
	s := NewFeedback()

	assert.Equal(t, 0, s.Add(1, "first"))
	assert.Equal(t, 1, s.Add(2, "second"))
	assert.Equal(t, 2, s.Add(1, "third"))
}

func TestFeedbackPendingAndReview(t *testing.T) {
	s := NewFeedback()

	a := s.Add(1, "love it")
	b := s.Add(2, "broken")

	pending := s.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, a, pending[0].ID)
	assert.Equal(t, b, pending[1].ID)

	require.True(t, s.UpdateStatus(a, FeedbackReviewed))
	pending = s.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, b, pending[0].ID)

	e, ok := s.Get(a)
	require.True(t, ok)
	assert.Equal(t, FeedbackReviewed, e.Status)
}

func TestFeedbackUpdateUnknownID(t *testing.T) {
	s := NewFeedback()
	assert.False(t, s.UpdateStatus(5, FeedbackReviewed))
}

func TestFeedbackEntryFields(t *testing.T) {
	s := NewFeedback()
	id := s.Add(42, "great bot")

	e, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, int64(42), e.UserID)
	assert.Equal(t, "great bot", e.Text)
	assert.Equal(t, FeedbackPending, e.Status)
	assert.False(t, e.CreatedAt.IsZero())
}
