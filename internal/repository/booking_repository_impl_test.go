package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestFindTakenSlotsQueriesActiveStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository()

	mock.ExpectQuery(`SELECT "time_slot" FROM "bookings"`).
		WithArgs("grooming", "2025-07-10", "pending", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"time_slot"}).AddRow("09:00").AddRow("10:30"))

	slots, err := repo.FindTakenSlots(db, "grooming", "2025-07-10")

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:30"}, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTakenSlotsEmptyDay(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository()

	mock.ExpectQuery(`SELECT "time_slot" FROM "bookings"`).
		WithArgs("doctor", "2025-07-11", "pending", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"time_slot"}))

	slots, err := repo.FindTakenSlots(db, "doctor", "2025-07-11")

	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveSlotMissingReadsAsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository()

	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WithArgs("grooming", "2025-07-10", "09:00", "pending", "confirmed", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	booking, err := repo.FindActiveSlot(db, "grooming", "2025-07-10", "09:00")

	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelActiveReportsAffectedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository()
	userID := uuid.New()

	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.CancelActive(db, 7, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelActiveTerminalRowUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository()
	userID := uuid.New()

	mock.ExpectExec(`UPDATE "bookings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.CancelActive(db, 7, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
