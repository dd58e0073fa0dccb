package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusChecks(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		active   bool
		terminal bool
	}{
		{BookingStatusPending, true, false},
		{BookingStatusConfirmed, true, false},
		{BookingStatusCancelled, false, true},
		{BookingStatusCompleted, false, true},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.status}
		assert.Equal(t, tt.active, b.IsActive(), "status %s", tt.status)
		assert.Equal(t, tt.terminal, b.IsTerminal(), "status %s", tt.status)
	}
}

func TestBookingCancel(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed}

	b.Cancel()

	assert.True(t, b.IsCancelled())
	assert.True(t, b.IsTerminal())
	assert.False(t, b.IsActive())
}

func TestCancelIsIdempotentOnStatus(t *testing.T) {
	b := &Booking{Status: BookingStatusCancelled}
	b.Cancel()
	assert.Equal(t, BookingStatusCancelled, b.Status)
}
