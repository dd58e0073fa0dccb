package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	PetID            int             `json:"pet_id" validate:"required,min=1"`
	ServiceType      string          `json:"service_type" validate:"required"`
	AppointmentDate  string          `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	TimeSlot         string          `json:"time_slot" validate:"required"`        // Format: HH:MM
	Price            decimal.Decimal `json:"price" validate:"required"`
	Notes            string          `json:"notes"`
	VeterinarianName string          `json:"veterinarian_name"`
	ClinicName       string          `json:"clinic_name"`
}

// Response DTOs

type BookingResponse struct {
	ID               int             `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	PetID            int             `json:"pet_id"`
	Ledger           string          `json:"ledger"`
	ServiceType      string          `json:"service_type"`
	AppointmentDate  string          `json:"appointment_date"`
	TimeSlot         string          `json:"time_slot"`
	Price            decimal.Decimal `json:"price"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
	VeterinarianName string          `json:"veterinarian_name,omitempty"`
	ClinicName       string          `json:"clinic_name,omitempty"`
	Provisional      bool            `json:"provisional,omitempty"`
	Pet              *PetResponse    `json:"pet,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type SlotAvailability struct {
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date         string             `json:"date"`
	Availability []SlotAvailability `json:"availability"`
}
