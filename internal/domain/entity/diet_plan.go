package entity

import (
	"time"

	"github.com/google/uuid"
)

// DietPlan describes a feeding regimen for a pet. FeedingTimes is a JSON
// array of HH:MM strings, stored as text.
type DietPlan struct {
	ID                  int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PetID               int       `gorm:"not null;index" json:"pet_id"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FoodBrand           string    `gorm:"type:varchar(255)" json:"food_brand,omitempty"`
	FoodType            string    `gorm:"type:varchar(100)" json:"food_type,omitempty"`
	DailyAmount         string    `gorm:"type:varchar(100)" json:"daily_amount,omitempty"`
	FeedingTimes        string    `gorm:"type:text" json:"feeding_times,omitempty"`
	SpecialInstructions string    `gorm:"type:text" json:"special_instructions,omitempty"`
	StartDate           string    `gorm:"type:varchar(10)" json:"start_date,omitempty"`
	EndDate             string    `gorm:"type:varchar(10)" json:"end_date,omitempty"`
	IsActive            bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet Pet `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (DietPlan) TableName() string {
	return "diet_plans"
}
