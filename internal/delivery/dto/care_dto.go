package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateHealthRecordRequest struct {
	RecordType             string          `json:"record_type" validate:"required,oneof=checkup vaccination grooming medication diet"`
	Title                  string          `json:"title" validate:"required,min=1"`
	Description            string          `json:"description"`
	DateScheduled          string          `json:"date_scheduled" validate:"omitempty,datetime=2006-01-02"`
	VeterinarianName       string          `json:"veterinarian_name"`
	ClinicName             string          `json:"clinic_name"`
	Notes                  string          `json:"notes"`
	Cost                   decimal.Decimal `json:"cost"`
	IsRecurring            bool            `json:"is_recurring"`
	RecurrenceIntervalDays int             `json:"recurrence_interval_days" validate:"omitempty,gt=0"`
}

type CreateVaccinationRequest struct {
	VaccineName      string `json:"vaccine_name" validate:"required,min=1"`
	DateAdministered string `json:"date_administered" validate:"omitempty,datetime=2006-01-02"`
	NextDueDate      string `json:"next_due_date" validate:"omitempty,datetime=2006-01-02"`
	VeterinarianName string `json:"veterinarian_name"`
	ClinicName       string `json:"clinic_name"`
	BatchNumber      string `json:"batch_number"`
	Notes            string `json:"notes"`
	IsCoreVaccine    bool   `json:"is_core_vaccine"`
}

type CreateDietPlanRequest struct {
	FoodBrand           string   `json:"food_brand"`
	FoodType            string   `json:"food_type"`
	DailyAmount         string   `json:"daily_amount"`
	FeedingTimes        []string `json:"feeding_times"`
	SpecialInstructions string   `json:"special_instructions"`
	StartDate           string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate             string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type HealthRecordResponse struct {
	ID                     int             `json:"id"`
	PetID                  int             `json:"pet_id"`
	RecordType             string          `json:"record_type"`
	Title                  string          `json:"title"`
	Description            string          `json:"description,omitempty"`
	DateScheduled          string          `json:"date_scheduled,omitempty"`
	DateCompleted          string          `json:"date_completed,omitempty"`
	VeterinarianName       string          `json:"veterinarian_name,omitempty"`
	ClinicName             string          `json:"clinic_name,omitempty"`
	Notes                  string          `json:"notes,omitempty"`
	Cost                   decimal.Decimal `json:"cost,omitempty"`
	IsCompleted            bool            `json:"is_completed"`
	IsRecurring            bool            `json:"is_recurring"`
	RecurrenceIntervalDays int             `json:"recurrence_interval_days,omitempty"`
	NextDueDate            string          `json:"next_due_date,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

type HealthRecordListResponse struct {
	Records []HealthRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}

type VaccinationResponse struct {
	ID               int       `json:"id"`
	PetID            int       `json:"pet_id"`
	VaccineName      string    `json:"vaccine_name"`
	DateAdministered string    `json:"date_administered,omitempty"`
	NextDueDate      string    `json:"next_due_date,omitempty"`
	VeterinarianName string    `json:"veterinarian_name,omitempty"`
	ClinicName       string    `json:"clinic_name,omitempty"`
	BatchNumber      string    `json:"batch_number,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	IsCoreVaccine    bool      `json:"is_core_vaccine"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type VaccinationListResponse struct {
	Vaccinations []VaccinationResponse `json:"vaccinations"`
	Total        int                   `json:"total"`
}

type DietPlanResponse struct {
	ID                  int       `json:"id"`
	PetID               int       `json:"pet_id"`
	FoodBrand           string    `json:"food_brand,omitempty"`
	FoodType            string    `json:"food_type,omitempty"`
	DailyAmount         string    `json:"daily_amount,omitempty"`
	FeedingTimes        []string  `json:"feeding_times,omitempty"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	StartDate           string    `json:"start_date,omitempty"`
	EndDate             string    `json:"end_date,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type DietPlanListResponse struct {
	Plans []DietPlanResponse `json:"plans"`
	Total int                `json:"total"`
}
