package converter

import (
	"encoding/json"

	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/domain/entity"
)

// HealthRecordToResponse converts a HealthRecord entity to its DTO
func HealthRecordToResponse(record *entity.HealthRecord) *dto.HealthRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.HealthRecordResponse{
		ID:                     record.ID,
		PetID:                  record.PetID,
		RecordType:             record.RecordType,
		Title:                  record.Title,
		Description:            record.Description,
		DateScheduled:          record.DateScheduled,
		DateCompleted:          record.DateCompleted,
		VeterinarianName:       record.VeterinarianName,
		ClinicName:             record.ClinicName,
		Notes:                  record.Notes,
		Cost:                   record.Cost,
		IsCompleted:            record.IsCompleted,
		IsRecurring:            record.IsRecurring,
		RecurrenceIntervalDays: record.RecurrenceIntervalDays,
		NextDueDate:            record.NextDueDate,
		CreatedAt:              record.CreatedAt,
		UpdatedAt:              record.UpdatedAt,
	}
}

func HealthRecordsToResponses(records []entity.HealthRecord) []dto.HealthRecordResponse {
	responses := make([]dto.HealthRecordResponse, len(records))
	for i, record := range records {
		resp := HealthRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// VaccinationToResponse converts a Vaccination entity to its DTO
func VaccinationToResponse(vaccination *entity.Vaccination) *dto.VaccinationResponse {
	if vaccination == nil {
		return nil
	}

	return &dto.VaccinationResponse{
		ID:               vaccination.ID,
		PetID:            vaccination.PetID,
		VaccineName:      vaccination.VaccineName,
		DateAdministered: vaccination.DateAdministered,
		NextDueDate:      vaccination.NextDueDate,
		VeterinarianName: vaccination.VeterinarianName,
		ClinicName:       vaccination.ClinicName,
		BatchNumber:      vaccination.BatchNumber,
		Notes:            vaccination.Notes,
		IsCoreVaccine:    vaccination.IsCoreVaccine,
		CreatedAt:        vaccination.CreatedAt,
		UpdatedAt:        vaccination.UpdatedAt,
	}
}

func VaccinationsToResponses(vaccinations []entity.Vaccination) []dto.VaccinationResponse {
	responses := make([]dto.VaccinationResponse, len(vaccinations))
	for i, vaccination := range vaccinations {
		resp := VaccinationToResponse(&vaccination)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// DietPlanToResponse converts a DietPlan entity to its DTO. FeedingTimes is
// stored as a JSON array in a text column; unparseable values read as empty.
func DietPlanToResponse(plan *entity.DietPlan) *dto.DietPlanResponse {
	if plan == nil {
		return nil
	}

	var feedingTimes []string
	if plan.FeedingTimes != "" {
		if err := json.Unmarshal([]byte(plan.FeedingTimes), &feedingTimes); err != nil {
			feedingTimes = nil
		}
	}

	return &dto.DietPlanResponse{
		ID:                  plan.ID,
		PetID:               plan.PetID,
		FoodBrand:           plan.FoodBrand,
		FoodType:            plan.FoodType,
		DailyAmount:         plan.DailyAmount,
		FeedingTimes:        feedingTimes,
		SpecialInstructions: plan.SpecialInstructions,
		StartDate:           plan.StartDate,
		EndDate:             plan.EndDate,
		IsActive:            plan.IsActive,
		CreatedAt:           plan.CreatedAt,
		UpdatedAt:           plan.UpdatedAt,
	}
}

func DietPlansToResponses(plans []entity.DietPlan) []dto.DietPlanResponse {
	responses := make([]dto.DietPlanResponse, len(plans))
	for i, plan := range plans {
		resp := DietPlanToResponse(&plan)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
