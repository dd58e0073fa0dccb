package repository

import (
	"pawpal-server/internal/domain/entity"
	domainRepo "pawpal-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dietPlanRepository struct{}

func NewDietPlanRepository() domainRepo.DietPlanRepository {
	return &dietPlanRepository{}
}

func (r *dietPlanRepository) Create(db *gorm.DB, plan *entity.DietPlan) error {
	return db.Create(plan).Error
}

func (r *dietPlanRepository) FindByPet(db *gorm.DB, petID int, userID uuid.UUID) ([]entity.DietPlan, error) {
	var plans []entity.DietPlan
	err := db.Where("pet_id = ? AND user_id = ?", petID, userID).
		Order("is_active DESC, created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
