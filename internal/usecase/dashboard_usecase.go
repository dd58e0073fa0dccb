package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/delivery/http/middleware"
	"pawpal-server/internal/domain/entity"
	"pawpal-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// upcomingWindowDays is how far ahead the dashboard looks for due care.
const upcomingWindowDays = 30

type DashboardUsecase interface {
	Get(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	petRepo         repository.PetRepository
	healthRepo      repository.HealthRecordRepository
	vaccinationRepo repository.VaccinationRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	healthRepo repository.HealthRecordRepository,
	vaccinationRepo repository.VaccinationRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		petRepo:         petRepo,
		healthRepo:      healthRepo,
		vaccinationRepo: vaccinationRepo,
	}
}

// Get assembles the owner's dashboard: active pet count plus health records
// and vaccinations due within the next thirty days, soonest first.
func (u *dashboardUsecase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	until := time.Now().AddDate(0, 0, upcomingWindowDays).Format("2006-01-02")

	petCount, err := u.petRepo.CountActive(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to count pets for user %s: %+v", userID, err)
		return nil, err
	}

	records, err := u.healthRepo.FindDueWithin(u.db.WithContext(ctx), userID, until)
	if err != nil {
		u.log.Warnf("Failed to find due health records for user %s: %+v", userID, err)
		return nil, err
	}

	vaccinations, err := u.vaccinationRepo.FindDueWithin(u.db.WithContext(ctx), userID, until)
	if err != nil {
		u.log.Warnf("Failed to find due vaccinations for user %s: %+v", userID, err)
		return nil, err
	}

	items := make([]dto.UpcomingItem, 0, len(records)+len(vaccinations))
	for _, record := range records {
		items = append(items, dto.UpcomingItem{
			ID:         record.ID,
			Title:      record.Title,
			RecordType: record.RecordType,
			DueDate:    record.NextDueDate,
			PetID:      record.PetID,
			PetName:    record.Pet.Name,
		})
	}
	for _, vaccination := range vaccinations {
		items = append(items, dto.UpcomingItem{
			ID:         vaccination.ID,
			Title:      vaccination.VaccineName,
			RecordType: entity.RecordTypeVaccination,
			DueDate:    vaccination.NextDueDate,
			PetID:      vaccination.PetID,
			PetName:    vaccination.Pet.Name,
		})
	}

	// ISO dates sort lexicographically.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate < items[j].DueDate
	})

	return &dto.DashboardResponse{
		UpcomingItems: items,
		PetCount:      petCount,
	}, nil
}
