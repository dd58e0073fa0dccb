package repository

import (
	"pawpal-server/internal/domain/entity"
	domainRepo "pawpal-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthRecordRepository struct{}

func NewHealthRecordRepository() domainRepo.HealthRecordRepository {
	return &healthRecordRepository{}
}

func (r *healthRecordRepository) Create(db *gorm.DB, record *entity.HealthRecord) error {
	return db.Create(record).Error
}

func (r *healthRecordRepository) FindByPet(db *gorm.DB, petID int, userID uuid.UUID) ([]entity.HealthRecord, error) {
	var records []entity.HealthRecord
	err := db.Where("pet_id = ? AND user_id = ?", petID, userID).
		Order("CASE WHEN next_due_date IS NOT NULL AND next_due_date != '' THEN next_due_date ELSE date_scheduled END ASC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) FindDueWithin(db *gorm.DB, userID uuid.UUID, until string) ([]entity.HealthRecord, error) {
	var records []entity.HealthRecord
	err := db.Preload("Pet").
		Joins("JOIN pets ON pets.id = health_records.pet_id").
		Where("health_records.user_id = ? AND pets.is_active = ?", userID, true).
		Where("health_records.is_completed = ?", false).
		Where("health_records.next_due_date != '' AND health_records.next_due_date <= ?", until).
		Order("health_records.next_due_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
