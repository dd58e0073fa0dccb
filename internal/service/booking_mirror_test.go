package service

import (
	"context"
	"testing"

	"pawpal-server/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMirror(t *testing.T) (*BookingMirror, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	return NewBookingMirror(client, log), mr
}

func makeBooking(id, petID int, ledger, date, slot, service string) entity.Booking {
	return entity.Booking{
		ID:              id,
		PetID:           petID,
		Ledger:          ledger,
		AppointmentDate: date,
		TimeSlot:        slot,
		ServiceType:     service,
		Status:          entity.BookingStatusConfirmed,
	}
}

func TestRememberAndEntries(t *testing.T) {
	mirror, _ := newTestMirror(t)
	ctx := context.Background()
	userID := uuid.New()

	b := makeBooking(7, 3, entity.LedgerDoctor, "2025-07-10", "10:30", "checkup")
	require.NoError(t, mirror.Remember(ctx, userID, &b))

	entries, err := mirror.Entries(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].ID)
	assert.True(t, entries[0].Provisional)
}

func TestRememberReplacesSameID(t *testing.T) {
	mirror, _ := newTestMirror(t)
	ctx := context.Background()
	userID := uuid.New()

	b := makeBooking(7, 3, entity.LedgerDoctor, "2025-07-10", "10:30", "checkup")
	require.NoError(t, mirror.Remember(ctx, userID, &b))

	b.TimeSlot = "11:00"
	require.NoError(t, mirror.Remember(ctx, userID, &b))

	entries, err := mirror.Entries(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "11:00", entries[0].TimeSlot)
}

func TestForgetByID(t *testing.T) {
	mirror, _ := newTestMirror(t)
	ctx := context.Background()
	userID := uuid.New()

	b1 := makeBooking(1, 3, entity.LedgerGrooming, "2025-07-10", "09:00", "bath")
	b2 := makeBooking(2, 3, entity.LedgerGrooming, "2025-07-11", "10:00", "nail_trim")
	require.NoError(t, mirror.Remember(ctx, userID, &b1))
	require.NoError(t, mirror.Remember(ctx, userID, &b2))

	require.NoError(t, mirror.Forget(ctx, userID, 1, NaturalKeyOf(&b1)))

	entries, err := mirror.Entries(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].ID)
}

func TestForgetByNaturalKey(t *testing.T) {
	mirror, _ := newTestMirror(t)
	ctx := context.Background()
	userID := uuid.New()

	// Mirrored entry whose id never matched a ledger row.
	b := makeBooking(0, 3, entity.LedgerGrooming, "2025-07-10", "09:00", "bath")
	require.NoError(t, mirror.Remember(ctx, userID, &b))

	ledgerRow := makeBooking(42, 3, entity.LedgerGrooming, "2025-07-10", "09:00", "bath")
	require.NoError(t, mirror.Forget(ctx, userID, 42, NaturalKeyOf(&ledgerRow)))

	entries, err := mirror.Entries(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesDropsCorruptValue(t *testing.T) {
	mirror, mr := newTestMirror(t)
	ctx := context.Background()
	userID := uuid.New()

	mr.Set(mirrorKeyPrefix+userID.String(), "not json")

	entries, err := mirror.Entries(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The corrupt key is gone.
	assert.False(t, mr.Exists(mirrorKeyPrefix+userID.String()))
}

func TestEntriesEmptyForUnknownUser(t *testing.T) {
	mirror, _ := newTestMirror(t)

	entries, err := mirror.Entries(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMergeServerWinsByID(t *testing.T) {
	server := []entity.Booking{makeBooking(7, 3, entity.LedgerDoctor, "2025-07-10", "10:30", "checkup")}
	local := []entity.Booking{makeBooking(7, 3, entity.LedgerDoctor, "2025-07-10", "10:30", "checkup")}
	local[0].Provisional = true

	merged := Merge(server, local, nil)

	require.Len(t, merged, 1)
	assert.False(t, merged[0].Provisional)
}

func TestMergeServerWinsByNaturalKey(t *testing.T) {
	// Same pet, ledger, date, slot and service but different ids still
	// collapse to the ledger row.
	server := []entity.Booking{makeBooking(42, 3, entity.LedgerGrooming, "2025-07-10", "09:00", "bath")}
	local := []entity.Booking{makeBooking(0, 3, entity.LedgerGrooming, "2025-07-10", "09:00", "bath")}

	merged := Merge(server, local, nil)

	require.Len(t, merged, 1)
	assert.Equal(t, 42, merged[0].ID)
}

func TestMergeKeepsDistinctLocalEntries(t *testing.T) {
	server := []entity.Booking{makeBooking(1, 3, entity.LedgerGrooming, "2025-07-10", "09:00", "bath")}
	local := []entity.Booking{makeBooking(2, 3, entity.LedgerGrooming, "2025-07-11", "10:00", "nail_trim")}

	merged := Merge(server, local, nil)

	require.Len(t, merged, 2)
}

func TestMergeOptimisticPrepended(t *testing.T) {
	server := []entity.Booking{makeBooking(1, 3, entity.LedgerGrooming, "2025-07-10", "09:00", "bath")}
	optimistic := makeBooking(2, 3, entity.LedgerGrooming, "2025-07-12", "11:00", "full_groom")

	merged := Merge(server, nil, &optimistic)

	require.Len(t, merged, 2)
	assert.Equal(t, 2, merged[0].ID)
}

func TestMergeOptimisticDroppedWhenServerHasIt(t *testing.T) {
	server := []entity.Booking{makeBooking(2, 3, entity.LedgerGrooming, "2025-07-12", "11:00", "full_groom")}
	optimistic := makeBooking(2, 3, entity.LedgerGrooming, "2025-07-12", "11:00", "full_groom")

	merged := Merge(server, nil, &optimistic)

	require.Len(t, merged, 1)
}

func TestMergeEmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil, nil))
}
