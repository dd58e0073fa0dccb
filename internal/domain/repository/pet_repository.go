package repository

import (
	"pawpal-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Pet, error)
	// FindOwnedActive returns the pet only when it belongs to userID and is
	// active; nil otherwise. Every ownership check in the system goes
	// through this.
	FindOwnedActive(db *gorm.DB, petID int, userID uuid.UUID) (*entity.Pet, error)
	CountActive(db *gorm.DB, userID uuid.UUID) (int64, error)
}
