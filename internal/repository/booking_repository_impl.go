package repository

import (
	"errors"

	"pawpal-server/internal/domain/entity"
	domainRepo "pawpal-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, ledger string, id int, userID uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Pet").
		Where("ledger = ? AND id = ? AND user_id = ?", ledger, id, userID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserID(db *gorm.DB, ledger string, userID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Pet").
		Where("ledger = ? AND user_id = ?", ledger, userID).
		Order("appointment_date DESC, time_slot DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindTakenSlots(db *gorm.DB, ledger, date string) ([]string, error) {
	var slots []string
	err := db.Model(&entity.Booking{}).
		Where("ledger = ? AND appointment_date = ? AND status IN ?", ledger, date, entity.ActiveStatuses).
		Pluck("time_slot", &slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *bookingRepository) FindActiveSlot(db *gorm.DB, ledger, date, slot string) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("ledger = ? AND appointment_date = ? AND time_slot = ? AND status IN ?",
		ledger, date, slot, entity.ActiveStatuses).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// CancelActive cancels only while the booking is still pending or confirmed,
// so a concurrent double-cancel loses with 0 affected rows.
func (r *bookingRepository) CancelActive(db *gorm.DB, id int, userID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND user_id = ? AND status IN ?", id, userID, entity.ActiveStatuses).
		Update("status", entity.BookingStatusCancelled)
	return result.RowsAffected, result.Error
}
