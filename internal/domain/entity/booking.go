package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ActiveStatuses are the statuses that occupy a slot. "pending" is part of
// the data model but no operation currently produces it; create() always
// yields "confirmed".
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// Booking represents one grooming or doctor appointment row. Both ledgers
// share this shape; Ledger discriminates the namespace and ServiceType is
// validated against that ledger's vocabulary.
type Booking struct {
	ID               int             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	PetID            int             `gorm:"not null;index" json:"pet_id"`
	Ledger           string          `gorm:"type:varchar(20);not null;index" json:"ledger"`
	ServiceType      string          `gorm:"type:varchar(30);not null" json:"service_type"`
	AppointmentDate  string          `gorm:"type:varchar(10);not null;index" json:"appointment_date"`
	TimeSlot         string          `gorm:"type:varchar(5);not null" json:"time_slot"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Status           BookingStatus   `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	Notes            string          `gorm:"type:text" json:"notes,omitempty"`
	VeterinarianName string          `gorm:"type:varchar(255)" json:"veterinarian_name,omitempty"`
	ClinicName       string          `gorm:"type:varchar(255)" json:"clinic_name,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Provisional marks rows coming from the reconciliation mirror rather
	// than the ledger. Never persisted.
	Provisional bool `gorm:"-" json:"provisional,omitempty"`

	// Relationships
	Pet Pet `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsCompleted checks if booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// IsTerminal reports whether the booking reached a final state. Terminal
// bookings cannot be cancelled.
func (b *Booking) IsTerminal() bool {
	return b.IsCancelled() || b.IsCompleted()
}

// IsActive reports whether the booking still occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// Cancel changes booking status to cancelled
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
}
