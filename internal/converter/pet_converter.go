package converter

import (
	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/domain/entity"
)

// PetToResponse converts a Pet entity to PetResponse DTO
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	return &dto.PetResponse{
		ID:          pet.ID,
		UserID:      pet.UserID,
		Name:        pet.Name,
		Species:     pet.Species,
		Breed:       pet.Breed,
		BirthDate:   pet.BirthDate,
		Weight:      pet.Weight,
		Gender:      pet.Gender,
		PhotoURL:    pet.PhotoURL,
		MicrochipID: pet.MicrochipID,
		IsActive:    pet.IsActive,
		CreatedAt:   pet.CreatedAt,
		UpdatedAt:   pet.UpdatedAt,
	}
}

// PetsToResponses converts a slice of Pet entities to slice of PetResponse DTOs
func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i, pet := range pets {
		resp := PetToResponse(&pet)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
