package repository

import (
	"pawpal-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	// FindByID is owner-scoped: a booking belonging to another user reads
	// as absent.
	FindByID(db *gorm.DB, ledger string, id int, userID uuid.UUID) (*entity.Booking, error)
	FindByUserID(db *gorm.DB, ledger string, userID uuid.UUID) ([]entity.Booking, error)
	// FindTakenSlots returns the time slots with a pending or confirmed
	// booking on the given date, for any user in the ledger.
	FindTakenSlots(db *gorm.DB, ledger, date string) ([]string, error)
	FindActiveSlot(db *gorm.DB, ledger, date, slot string) (*entity.Booking, error)
	// CancelActive atomically cancels the booking only while it is still
	// pending or confirmed. Returns affected rows: 0 means the booking was
	// already terminal.
	CancelActive(db *gorm.DB, id int, userID uuid.UUID) (int64, error)
}
