package usecase

import (
	"context"
	"errors"

	"pawpal-server/internal/converter"
	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/delivery/http/middleware"
	"pawpal-server/internal/domain/entity"
	"pawpal-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PetUsecase interface {
	Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	List(ctx context.Context) (*dto.PetListResponse, error)
	Get(ctx context.Context, petID int) (*dto.PetResponse, error)
}

type petUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	petRepo repository.PetRepository
}

func NewPetUsecase(db *gorm.DB, log *logrus.Logger, petRepo repository.PetRepository) PetUsecase {
	return &petUsecase{
		db:      db,
		log:     log,
		petRepo: petRepo,
	}
}

func (u *petUsecase) Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if req.BirthDate != "" && !entity.ValidDate(req.BirthDate) {
		return nil, ErrInvalidDate
	}

	pet := &entity.Pet{
		UserID:      userID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		BirthDate:   req.BirthDate,
		Weight:      req.Weight,
		Gender:      req.Gender,
		PhotoURL:    req.PhotoURL,
		MicrochipID: req.MicrochipID,
		IsActive:    true,
	}

	if err := u.petRepo.Create(u.db.WithContext(ctx), pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	u.log.Infof("Pet created: id=%d, name=%s", pet.ID, pet.Name)
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) List(ctx context.Context) (*dto.PetListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pets, err := u.petRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list pets for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) Get(ctx context.Context, petID int) (*dto.PetResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	pet, err := u.petRepo.FindOwnedActive(u.db.WithContext(ctx), petID, userID)
	if err != nil {
		u.log.Warnf("Failed to find pet %d: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	return converter.PetToResponse(pet), nil
}
