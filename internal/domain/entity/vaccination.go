package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vaccination tracks a vaccine administered to a pet and when it is next due.
type Vaccination struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PetID            int       `gorm:"not null;index" json:"pet_id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	VaccineName      string    `gorm:"type:varchar(255);not null" json:"vaccine_name"`
	DateAdministered string    `gorm:"type:varchar(10)" json:"date_administered,omitempty"`
	NextDueDate      string    `gorm:"type:varchar(10);index" json:"next_due_date,omitempty"`
	VeterinarianName string    `gorm:"type:varchar(255)" json:"veterinarian_name,omitempty"`
	ClinicName       string    `gorm:"type:varchar(255)" json:"clinic_name,omitempty"`
	BatchNumber      string    `gorm:"type:varchar(100)" json:"batch_number,omitempty"`
	Notes            string    `gorm:"type:text" json:"notes,omitempty"`
	IsCoreVaccine    bool      `gorm:"not null;default:false" json:"is_core_vaccine"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet Pet `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (Vaccination) TableName() string {
	return "vaccinations"
}
