package appointments

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLedger(t *testing.T) *RedisLedger {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLedger(client, nil)
}

func TestRedisLedger_ConfirmAndGet(t *testing.T) {
	ledger := newRedisLedger(t)
	ctx := context.Background()

	booking, err := ledger.Confirm(ctx, validConfirm())
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, booking.Status)

	found, err := ledger.GetByID(ctx, booking.AppointmentID)
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentID, found.PaymentID)
}

func TestRedisLedger_DuplicateSlot(t *testing.T) {
	ledger := newRedisLedger(t)
	ctx := context.Background()

	_, err := ledger.Confirm(ctx, validConfirm())
	require.NoError(t, err)

	dup := &ConfirmRequest{Name: "ANN", Doctor: "dr. x", Date: "2025-01-01", Time: "10:00", Amount: 75}
	_, err = ledger.Confirm(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateSlot)

	bookings, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestRedisLedger_MissingFields(t *testing.T) {
	ledger := newRedisLedger(t)

	req := validConfirm()
	req.Time = ""
	_, err := ledger.Confirm(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRedisLedger_NegativeAmount(t *testing.T) {
	ledger := newRedisLedger(t)
	ctx := context.Background()

	req := validConfirm()
	req.Amount = -1
	_, err := ledger.Confirm(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	bookings, err := ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRedisLedger_GetUnknown(t *testing.T) {
	ledger := newRedisLedger(t)

	_, err := ledger.GetByID(context.Background(), "APT-00000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
