package repository

import (
	"pawpal-server/internal/domain/entity"
	domainRepo "pawpal-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vaccinationRepository struct{}

func NewVaccinationRepository() domainRepo.VaccinationRepository {
	return &vaccinationRepository{}
}

func (r *vaccinationRepository) Create(db *gorm.DB, vaccination *entity.Vaccination) error {
	return db.Create(vaccination).Error
}

func (r *vaccinationRepository) FindByPet(db *gorm.DB, petID int, userID uuid.UUID) ([]entity.Vaccination, error) {
	var vaccinations []entity.Vaccination
	err := db.Where("pet_id = ? AND user_id = ?", petID, userID).
		Order("next_due_date ASC, date_administered DESC").
		Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}

func (r *vaccinationRepository) FindDueWithin(db *gorm.DB, userID uuid.UUID, until string) ([]entity.Vaccination, error) {
	var vaccinations []entity.Vaccination
	err := db.Preload("Pet").
		Joins("JOIN pets ON pets.id = vaccinations.pet_id").
		Where("vaccinations.user_id = ? AND pets.is_active = ?", userID, true).
		Where("vaccinations.next_due_date != '' AND vaccinations.next_due_date <= ?", until).
		Order("vaccinations.next_due_date ASC").
		Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}
