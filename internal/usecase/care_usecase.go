package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"pawpal-server/internal/converter"
	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/delivery/http/middleware"
	"pawpal-server/internal/domain/entity"
	"pawpal-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CareUsecase covers the per-pet care history: health records, vaccinations
// and diet plans. Every operation is scoped to a pet the caller owns.
type CareUsecase interface {
	CreateHealthRecord(ctx context.Context, petID int, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	ListHealthRecords(ctx context.Context, petID int) (*dto.HealthRecordListResponse, error)
	CreateVaccination(ctx context.Context, petID int, req *dto.CreateVaccinationRequest) (*dto.VaccinationResponse, error)
	ListVaccinations(ctx context.Context, petID int) (*dto.VaccinationListResponse, error)
	CreateDietPlan(ctx context.Context, petID int, req *dto.CreateDietPlanRequest) (*dto.DietPlanResponse, error)
	ListDietPlans(ctx context.Context, petID int) (*dto.DietPlanListResponse, error)
}

type careUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	petRepo         repository.PetRepository
	healthRepo      repository.HealthRecordRepository
	vaccinationRepo repository.VaccinationRepository
	dietPlanRepo    repository.DietPlanRepository
}

func NewCareUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	healthRepo repository.HealthRecordRepository,
	vaccinationRepo repository.VaccinationRepository,
	dietPlanRepo repository.DietPlanRepository,
) CareUsecase {
	return &careUsecase{
		db:              db,
		log:             log,
		petRepo:         petRepo,
		healthRepo:      healthRepo,
		vaccinationRepo: vaccinationRepo,
		dietPlanRepo:    dietPlanRepo,
	}
}

func (u *careUsecase) CreateHealthRecord(ctx context.Context, petID int, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	userID, err := u.requireOwnedPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	record := &entity.HealthRecord{
		PetID:                  petID,
		UserID:                 userID,
		RecordType:             req.RecordType,
		Title:                  req.Title,
		Description:            req.Description,
		DateScheduled:          req.DateScheduled,
		VeterinarianName:       req.VeterinarianName,
		ClinicName:             req.ClinicName,
		Notes:                  req.Notes,
		Cost:                   req.Cost,
		IsRecurring:            req.IsRecurring,
		RecurrenceIntervalDays: req.RecurrenceIntervalDays,
	}

	if err := u.healthRepo.Create(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to create health record: %+v", err)
		return nil, err
	}

	return converter.HealthRecordToResponse(record), nil
}

func (u *careUsecase) ListHealthRecords(ctx context.Context, petID int) (*dto.HealthRecordListResponse, error) {
	userID, err := u.requireOwnedPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	records, err := u.healthRepo.FindByPet(u.db.WithContext(ctx), petID, userID)
	if err != nil {
		u.log.Warnf("Failed to list health records for pet %d: %+v", petID, err)
		return nil, err
	}

	return &dto.HealthRecordListResponse{
		Records: converter.HealthRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *careUsecase) CreateVaccination(ctx context.Context, petID int, req *dto.CreateVaccinationRequest) (*dto.VaccinationResponse, error) {
	userID, err := u.requireOwnedPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	vaccination := &entity.Vaccination{
		PetID:            petID,
		UserID:           userID,
		VaccineName:      req.VaccineName,
		DateAdministered: req.DateAdministered,
		NextDueDate:      req.NextDueDate,
		VeterinarianName: req.VeterinarianName,
		ClinicName:       req.ClinicName,
		BatchNumber:      req.BatchNumber,
		Notes:            req.Notes,
		IsCoreVaccine:    req.IsCoreVaccine,
	}

	if err := u.vaccinationRepo.Create(u.db.WithContext(ctx), vaccination); err != nil {
		u.log.Warnf("Failed to create vaccination: %+v", err)
		return nil, err
	}

	return converter.VaccinationToResponse(vaccination), nil
}

func (u *careUsecase) ListVaccinations(ctx context.Context, petID int) (*dto.VaccinationListResponse, error) {
	userID, err := u.requireOwnedPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	vaccinations, err := u.vaccinationRepo.FindByPet(u.db.WithContext(ctx), petID, userID)
	if err != nil {
		u.log.Warnf("Failed to list vaccinations for pet %d: %+v", petID, err)
		return nil, err
	}

	return &dto.VaccinationListResponse{
		Vaccinations: converter.VaccinationsToResponses(vaccinations),
		Total:        len(vaccinations),
	}, nil
}

func (u *careUsecase) CreateDietPlan(ctx context.Context, petID int, req *dto.CreateDietPlanRequest) (*dto.DietPlanResponse, error) {
	userID, err := u.requireOwnedPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	feedingTimes := ""
	if len(req.FeedingTimes) > 0 {
		raw, err := json.Marshal(req.FeedingTimes)
		if err != nil {
			u.log.Warnf("Failed to marshal feeding times: %+v", err)
			return nil, err
		}
		feedingTimes = string(raw)
	}

	plan := &entity.DietPlan{
		PetID:               petID,
		UserID:              userID,
		FoodBrand:           req.FoodBrand,
		FoodType:            req.FoodType,
		DailyAmount:         req.DailyAmount,
		FeedingTimes:        feedingTimes,
		SpecialInstructions: req.SpecialInstructions,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		IsActive:            true,
	}

	if err := u.dietPlanRepo.Create(u.db.WithContext(ctx), plan); err != nil {
		u.log.Warnf("Failed to create diet plan: %+v", err)
		return nil, err
	}

	return converter.DietPlanToResponse(plan), nil
}

func (u *careUsecase) ListDietPlans(ctx context.Context, petID int) (*dto.DietPlanListResponse, error) {
	userID, err := u.requireOwnedPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	plans, err := u.dietPlanRepo.FindByPet(u.db.WithContext(ctx), petID, userID)
	if err != nil {
		u.log.Warnf("Failed to list diet plans for pet %d: %+v", petID, err)
		return nil, err
	}

	return &dto.DietPlanListResponse{
		Plans: converter.DietPlansToResponses(plans),
		Total: len(plans),
	}, nil
}

// requireOwnedPet resolves the caller from context and confirms the pet is
// theirs and active.
func (u *careUsecase) requireOwnedPet(ctx context.Context, petID int) (uuid.UUID, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, errors.New("user not found in context")
	}

	pet, err := u.petRepo.FindOwnedActive(u.db.WithContext(ctx), petID, userID)
	if err != nil {
		u.log.Warnf("Failed to check pet %d ownership: %+v", petID, err)
		return uuid.Nil, err
	}
	if pet == nil {
		return uuid.Nil, ErrPetNotFound
	}

	return userID, nil
}
