package repository

import (
	"pawpal-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VaccinationRepository interface {
	Create(db *gorm.DB, vaccination *entity.Vaccination) error
	FindByPet(db *gorm.DB, petID int, userID uuid.UUID) ([]entity.Vaccination, error)
	FindDueWithin(db *gorm.DB, userID uuid.UUID, until string) ([]entity.Vaccination, error)
}
