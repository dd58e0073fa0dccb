package repository

import (
	"errors"

	"pawpal-server/internal/domain/entity"
	domainRepo "pawpal-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	return db.Create(pet).Error
}

func (r *petRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindOwnedActive(db *gorm.DB, petID int, userID uuid.UUID) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Where("id = ? AND user_id = ? AND is_active = ?", petID, userID, true).
		First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) CountActive(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Pet{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}
