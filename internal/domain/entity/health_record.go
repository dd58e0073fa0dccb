package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HealthRecordType enumerates the kinds of care a record can track.
const (
	RecordTypeCheckup     = "checkup"
	RecordTypeVaccination = "vaccination"
	RecordTypeGrooming    = "grooming"
	RecordTypeMedication  = "medication"
	RecordTypeDiet        = "diet"
)

// HealthRecord tracks scheduled or completed care for a pet.
type HealthRecord struct {
	ID                     int             `gorm:"primaryKey;autoIncrement" json:"id"`
	PetID                  int             `gorm:"not null;index" json:"pet_id"`
	UserID                 uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	RecordType             string          `gorm:"type:varchar(30);not null" json:"record_type"`
	Title                  string          `gorm:"type:varchar(255);not null" json:"title"`
	Description            string          `gorm:"type:text" json:"description,omitempty"`
	DateScheduled          string          `gorm:"type:varchar(10)" json:"date_scheduled,omitempty"`
	DateCompleted          string          `gorm:"type:varchar(10)" json:"date_completed,omitempty"`
	VeterinarianName       string          `gorm:"type:varchar(255)" json:"veterinarian_name,omitempty"`
	ClinicName             string          `gorm:"type:varchar(255)" json:"clinic_name,omitempty"`
	Notes                  string          `gorm:"type:text" json:"notes,omitempty"`
	Cost                   decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost,omitempty"`
	IsCompleted            bool            `gorm:"not null;default:false" json:"is_completed"`
	IsRecurring            bool            `gorm:"not null;default:false" json:"is_recurring"`
	RecurrenceIntervalDays int             `json:"recurrence_interval_days,omitempty"`
	NextDueDate            string          `gorm:"type:varchar(10);index" json:"next_due_date,omitempty"`
	CreatedAt              time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet Pet `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}
