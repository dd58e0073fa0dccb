package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroomingSlots(t *testing.T) {
	slots := Grooming.Slots()

	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	assert.Equal(t, "16:30", slots[15])
}

func TestDoctorSlots(t *testing.T) {
	slots := Doctor.Slots()

	require.Len(t, slots, 20)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "18:30", slots[19])
}

func TestSlotsStrictlyIncreasing(t *testing.T) {
	for _, ledger := range []Ledger{Grooming, Doctor} {
		slots := ledger.Slots()
		for i := 1; i < len(slots); i++ {
			assert.Less(t, slots[i-1], slots[i], "ledger %s", ledger.Name)
		}
	}
}

func TestSlotsDeterministic(t *testing.T) {
	assert.Equal(t, Grooming.Slots(), Grooming.Slots())
	assert.Equal(t, Doctor.Slots(), Doctor.Slots())
}

func TestHasService(t *testing.T) {
	assert.True(t, Grooming.HasService("bath"))
	assert.True(t, Grooming.HasService("full_groom"))
	assert.False(t, Grooming.HasService("checkup"))

	assert.True(t, Doctor.HasService("checkup"))
	assert.True(t, Doctor.HasService("emergency"))
	assert.False(t, Doctor.HasService("bath"))
}

func TestHasSlot(t *testing.T) {
	assert.True(t, Grooming.HasSlot("09:00"))
	assert.True(t, Grooming.HasSlot("16:30"))
	assert.False(t, Grooming.HasSlot("17:00"))
	assert.False(t, Grooming.HasSlot("09:15"))
	assert.False(t, Grooming.HasSlot("9:00"))

	assert.True(t, Doctor.HasSlot("18:30"))
	assert.False(t, Doctor.HasSlot("19:00"))
}

func TestLedgerByName(t *testing.T) {
	grooming, ok := LedgerByName("grooming")
	require.True(t, ok)
	assert.Equal(t, Grooming.Name, grooming.Name)

	doctor, ok := LedgerByName("doctor")
	require.True(t, ok)
	assert.Equal(t, Doctor.Name, doctor.Name)

	_, ok = LedgerByName("boarding")
	assert.False(t, ok)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-07-10"))
	assert.True(t, ValidDate("2020-01-01"))

	assert.False(t, ValidDate(""))
	assert.False(t, ValidDate("07/10/2025"))
	assert.False(t, ValidDate("2025-13-01"))
	assert.False(t, ValidDate("2025-02-30"))
	assert.False(t, ValidDate("not-a-date"))
}

func TestServicePrices(t *testing.T) {
	assert.Equal(t, "29", Grooming.Services["bath"].String())
	assert.Equal(t, "49", Grooming.Services["full_groom"].String())
	assert.Equal(t, "12", Grooming.Services["nail_trim"].String())
	assert.Equal(t, "15", Grooming.Services["teeth_cleaning"].String())

	assert.Equal(t, "35", Doctor.Services["checkup"].String())
	assert.Equal(t, "49", Doctor.Services["consultation"].String())
	assert.Equal(t, "79", Doctor.Services["emergency"].String())
	assert.Equal(t, "25", Doctor.Services["follow_up"].String())
}
