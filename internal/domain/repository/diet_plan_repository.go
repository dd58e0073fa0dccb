package repository

import (
	"pawpal-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DietPlanRepository interface {
	Create(db *gorm.DB, plan *entity.DietPlan) error
	FindByPet(db *gorm.DB, petID int, userID uuid.UUID) ([]entity.DietPlan, error)
}
