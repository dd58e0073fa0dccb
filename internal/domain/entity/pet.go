package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents a pet profile owned by a user. Pets are never hard-deleted;
// IsActive gates every ownership check.
type Pet struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Species     string    `gorm:"type:varchar(100);not null" json:"species"`
	Breed       string    `gorm:"type:varchar(100)" json:"breed,omitempty"`
	BirthDate   string    `gorm:"type:varchar(10)" json:"birth_date,omitempty"`
	Weight      float64   `json:"weight,omitempty"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender,omitempty"`
	PhotoURL    string    `gorm:"type:text" json:"photo_url,omitempty"`
	MicrochipID string    `gorm:"type:varchar(100)" json:"microchip_id,omitempty"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bookings []Booking `gorm:"foreignKey:PetID" json:"bookings,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}

// Gender constants
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"
)
