package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a pet owner account
type User struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email                 string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password              string    `gorm:"type:text;not null" json:"-"`
	Name                  string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone                 string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address               string    `gorm:"type:text" json:"address,omitempty"`
	City                  string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	State                 string    `gorm:"type:varchar(100)" json:"state,omitempty"`
	ZipCode               string    `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	EmergencyContactName  string    `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `gorm:"type:varchar(30)" json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pets []Pet `gorm:"foreignKey:UserID" json:"pets,omitempty"`
}

func (User) TableName() string {
	return "users"
}
