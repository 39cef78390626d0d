package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsSetGet(t *testing.T) {
	s := NewSessions()

	s.Set(1, "current_order", "ORD_1")
	v, ok := s.Get(1, "current_order")
	require.True(t, ok)
	assert.Equal(t, "ORD_1", v)

	_, ok = s.Get(1, "missing")
	assert.False(t, ok)
	_, ok = s.Get(2, "current_order")
	assert.False(t, ok)
}

func TestSessionsGetString(t *testing.T) {
	s := NewSessions()

	s.Set(1, "k", "v")
	assert.Equal(t, "v", s.GetString(1, "k"))

	s.Set(1, "n", 42)
	assert.Equal(t, "", s.GetString(1, "n"))
	assert.Equal(t, "", s.GetString(1, "absent"))
}

func TestSessionsClearRemovesAllKeys(t *testing.T) {
	s := NewSessions()

	s.Set(1, "a", "x")
	s.Set(1, "b", "y")
	s.Set(2, "a", "z")

	s.Clear(1)

	_, ok := s.Get(1, "a")
	assert.False(t, ok)
	_, ok = s.Get(1, "b")
	assert.False(t, ok)

	// other users untouched
	v, ok := s.Get(2, "a")
	require.True(t, ok)
	assert.Equal(t, "z", v)
}

func TestSessionsHas(t *testing.T) {
	s := NewSessions()

	assert.False(t, s.Has(1, "awaiting_feedback"))
	s.Set(1, "awaiting_feedback", true)
	assert.True(t, s.Has(1, "awaiting_feedback"))
}
