package repository

import (
	"pawpal-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(db *gorm.DB, record *entity.HealthRecord) error
	FindByPet(db *gorm.DB, petID int, userID uuid.UUID) ([]entity.HealthRecord, error)
	// FindDueWithin returns open records whose next due date falls on or
	// before the given date, across all of the user's active pets.
	FindDueWithin(db *gorm.DB, userID uuid.UUID, until string) ([]entity.HealthRecord, error)
}
