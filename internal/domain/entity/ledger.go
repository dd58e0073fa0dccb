package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger names used as the booking namespace discriminator.
const (
	LedgerGrooming = "grooming"
	LedgerDoctor   = "doctor"
)

// Ledger describes one booking namespace: its service vocabulary with
// reference prices and the operating window the slot grid is generated from.
// Grooming and doctor bookings share one table but never conflict across
// ledgers.
type Ledger struct {
	Name      string
	OpenHour  int
	CloseHour int
	Services  map[string]decimal.Decimal
}

var (
	// Grooming runs 09:00-17:00, last slot 16:30.
	Grooming = Ledger{
		Name:      LedgerGrooming,
		OpenHour:  9,
		CloseHour: 17,
		Services: map[string]decimal.Decimal{
			"bath":           decimal.RequireFromString("29.00"),
			"full_groom":     decimal.RequireFromString("49.00"),
			"nail_trim":      decimal.RequireFromString("12.00"),
			"teeth_cleaning": decimal.RequireFromString("15.00"),
		},
	}

	// Doctor visits run 09:00-19:00, last slot 18:30.
	Doctor = Ledger{
		Name:      LedgerDoctor,
		OpenHour:  9,
		CloseHour: 19,
		Services: map[string]decimal.Decimal{
			"checkup":      decimal.RequireFromString("35.00"),
			"consultation": decimal.RequireFromString("49.00"),
			"emergency":    decimal.RequireFromString("79.00"),
			"follow_up":    decimal.RequireFromString("25.00"),
		},
	}
)

// LedgerByName resolves a ledger descriptor from its name.
func LedgerByName(name string) (Ledger, bool) {
	switch name {
	case LedgerGrooming:
		return Grooming, true
	case LedgerDoctor:
		return Doctor, true
	}
	return Ledger{}, false
}

// Slots returns the ordered half-hour grid for this ledger, zero-padded
// HH:MM, same for every date.
func (l Ledger) Slots() []string {
	slots := make([]string, 0, (l.CloseHour-l.OpenHour)*2)
	for h := l.OpenHour; h < l.CloseHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		slots = append(slots, fmt.Sprintf("%02d:30", h))
	}
	return slots
}

// HasService reports whether code belongs to this ledger's vocabulary.
func (l Ledger) HasService(code string) bool {
	_, ok := l.Services[code]
	return ok
}

// HasSlot reports whether slot is one of the bookable grid labels.
func (l Ledger) HasSlot(slot string) bool {
	for _, s := range l.Slots() {
		if s == slot {
			return true
		}
	}
	return false
}

// ValidDate reports whether date is a syntactically valid YYYY-MM-DD string.
// No range check: past dates are accepted and simply show no conflicts.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
