package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePetRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Species     string  `json:"species" validate:"required,min=1"`
	Breed       string  `json:"breed"`
	BirthDate   string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Weight      float64 `json:"weight" validate:"omitempty,gt=0"`
	Gender      string  `json:"gender" validate:"omitempty,oneof=male female unknown"`
	PhotoURL    string  `json:"photo_url" validate:"omitempty,url"`
	MicrochipID string  `json:"microchip_id"`
}

// Response DTOs

type PetResponse struct {
	ID          int       `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed,omitempty"`
	BirthDate   string    `json:"birth_date,omitempty"`
	Weight      float64   `json:"weight,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	MicrochipID string    `json:"microchip_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
