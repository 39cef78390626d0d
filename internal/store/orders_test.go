package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestOrdersCreateInitialState(t *testing.T) {
	s := NewOrders()

	id := s.Create(42, "Telegram Premium - 1 Month")
	assert.Contains(t, id, "_42")
	assert.True(t, strings.HasPrefix(id, "ORD_"))

	o, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, int64(42), o.UserID)
	assert.Equal(t, "Telegram Premium - 1 Month", o.Service)
	assert.Equal(t, OrderPending, o.Status)
	assert.Empty(t, o.PaymentMethod)
	assert.Empty(t, o.PaymentStatus)
	assert.True(t, o.PaymentConfirmationTime.IsZero())
	assert.False(t, o.CreatedAt.IsZero())
}

func TestOrdersSameSecondIDsDoNotCollide(t *testing.T) {
	s := NewOrders()
	s.now = fixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	first := s.Create(42, "A")
	second := s.Create(42, "B")
	third := s.Create(42, "C")

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)
	assert.Equal(t, "ORD_20250601120000_42", first)
	assert.Equal(t, "ORD_20250601120000_42_1", second)
	assert.Equal(t, "ORD_20250601120000_42_2", third)
}

func TestOrdersGetUnknown(t *testing.T) {
	s := NewOrders()
	_, ok := s.Get("ORD_00000000000000_1")
	assert.False(t, ok)
}

func TestOrdersUpdateStatus(t *testing.T) {
	s := NewOrders()
	id := s.Create(7, "X")

	assert.True(t, s.UpdateStatus(id, OrderApproved))
	o, _ := s.Get(id)
	assert.Equal(t, OrderApproved, o.Status)
	assert.False(t, o.LastUpdated.IsZero())

	assert.False(t, s.UpdateStatus("missing", OrderRejected))
}

func TestOrdersUpdatePaymentMethodResetsPayment(t *testing.T) {
	s := NewOrders()
	id := s.Create(7, "X")

	require.True(t, s.UpdatePaymentMethod(id, "CBE"))
	require.True(t, s.UpdatePaymentStatus(id, PaymentConfirmed))
	o, _ := s.Get(id)
	require.Equal(t, PaymentConfirmed, o.PaymentStatus)
	require.False(t, o.PaymentConfirmationTime.IsZero())

	// Picking a method again resets the payment branch, even after confirmation.
	require.True(t, s.UpdatePaymentMethod(id, "TeleBirr"))
	o, _ = s.Get(id)
	assert.Equal(t, "TeleBirr", o.PaymentMethod)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.True(t, o.PaymentConfirmationTime.IsZero())
}

func TestOrdersUpdatePaymentStatusStampsConfirmationOnly(t *testing.T) {
	s := NewOrders()
	id := s.Create(7, "X")

	require.True(t, s.UpdatePaymentStatus(id, PaymentConfirmed))
	o, _ := s.Get(id)
	assert.False(t, o.PaymentConfirmationTime.IsZero())

	require.True(t, s.UpdatePaymentStatus(id, PaymentPending))
	o, _ = s.Get(id)
	assert.True(t, o.PaymentConfirmationTime.IsZero())

	assert.False(t, s.UpdatePaymentStatus("missing", PaymentConfirmed))
}

func TestOrdersByUserFiltering(t *testing.T) {
	s := NewOrders()
	a := s.Create(1, "A")
	b := s.Create(1, "B")
	s.Create(2, "C")

	require.True(t, s.UpdateStatus(b, OrderApproved))

	all := s.ByUser(1)
	assert.Len(t, all, 2)
	assert.Contains(t, all, a)
	assert.Contains(t, all, b)

	pending := s.PendingByUser(1)
	assert.Len(t, pending, 1)
	assert.Contains(t, pending, a)

	assert.Empty(t, s.ByUser(99))
}

func TestOrdersGetReturnsCopy(t *testing.T) {
	s := NewOrders()
	id := s.Create(1, "A")

	o, _ := s.Get(id)
	o.Status = OrderCompleted

	fresh, _ := s.Get(id)
	assert.Equal(t, OrderPending, fresh.Status)
}
