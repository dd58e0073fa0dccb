package usecase

import (
	"context"
	"testing"

	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/delivery/http/middleware"
	"pawpal-server/internal/domain/entity"
	"pawpal-server/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// fakeBookingRepo keeps bookings in memory. The db handle is ignored; the
// real implementation is a thin gorm layer exercised against a live
// database.
type fakeBookingRepo struct {
	bookings  map[int]*entity.Booking
	nextID    int
	createErr error
	findErr   error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int]*entity.Booking{}, nextID: 1}
}

func (f *fakeBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, b := range f.bookings {
		if b.Ledger == booking.Ledger && b.AppointmentDate == booking.AppointmentDate &&
			b.TimeSlot == booking.TimeSlot && b.IsActive() {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_active_slot"}
		}
	}
	booking.ID = f.nextID
	f.nextID++
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(db *gorm.DB, ledger string, id int, userID uuid.UUID) (*entity.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	b, ok := f.bookings[id]
	if !ok || b.Ledger != ledger || b.UserID != userID {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) FindByUserID(db *gorm.DB, ledger string, userID uuid.UUID) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range f.bookings {
		if b.Ledger == ledger && b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindTakenSlots(db *gorm.DB, ledger, date string) ([]string, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var slots []string
	for _, b := range f.bookings {
		if b.Ledger == ledger && b.AppointmentDate == date && b.IsActive() {
			slots = append(slots, b.TimeSlot)
		}
	}
	return slots, nil
}

func (f *fakeBookingRepo) FindActiveSlot(db *gorm.DB, ledger, date, slot string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.Ledger == ledger && b.AppointmentDate == date && b.TimeSlot == slot && b.IsActive() {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) CancelActive(db *gorm.DB, id int, userID uuid.UUID) (int64, error) {
	b, ok := f.bookings[id]
	if !ok || b.UserID != userID || !b.IsActive() {
		return 0, nil
	}
	b.Status = entity.BookingStatusCancelled
	return 1, nil
}

type fakePetRepo struct {
	pets map[int]*entity.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: map[int]*entity.Pet{}}
}

func (f *fakePetRepo) Create(db *gorm.DB, pet *entity.Pet) error {
	f.pets[pet.ID] = pet
	return nil
}

func (f *fakePetRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Pet, error) {
	var out []entity.Pet
	for _, p := range f.pets {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePetRepo) FindOwnedActive(db *gorm.DB, petID int, userID uuid.UUID) (*entity.Pet, error) {
	p, ok := f.pets[petID]
	if !ok || p.UserID != userID || !p.IsActive {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakePetRepo) CountActive(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range f.pets {
		if p.UserID == userID && p.IsActive {
			n++
		}
	}
	return n, nil
}

type bookingFixture struct {
	usecase     BookingUsecase
	bookingRepo *fakeBookingRepo
	petRepo     *fakePetRepo
	userID      uuid.UUID
	ctx         context.Context
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	log := logrus.New()
	mirror := service.NewBookingMirror(redisClient, log)

	bookingRepo := newFakeBookingRepo()
	petRepo := newFakePetRepo()

	userID := uuid.New()
	petRepo.pets[7] = &entity.Pet{ID: 7, UserID: userID, Name: "Biscuit", Species: "dog", IsActive: true}

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)

	return &bookingFixture{
		usecase:     NewBookingUsecase(db, log, bookingRepo, petRepo, mirror),
		bookingRepo: bookingRepo,
		petRepo:     petRepo,
		userID:      userID,
		ctx:         ctx,
	}
}

func TestCreateDoctorBooking(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.usecase.Create(f.ctx, entity.Doctor, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "checkup",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "10:30",
		Price:           decimal.RequireFromString("35.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, "doctor", booking.Ledger)
	assert.Equal(t, "2025-07-10", booking.AppointmentDate)
	assert.Equal(t, "10:30", booking.TimeSlot)
	assert.False(t, booking.Provisional)
	assert.NotZero(t, booking.ID)
}

func TestCreateRejectsInvalidDate(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "07/10/2025",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateRejectsForeignService(t *testing.T) {
	f := newBookingFixture(t)

	// A doctor service is not bookable on the grooming ledger.
	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "checkup",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("35.00"),
	})

	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestCreateRejectsSlotOutsideGrid(t *testing.T) {
	f := newBookingFixture(t)

	// 18:30 exists for doctor visits but not for grooming.
	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "18:30",
		Price:           decimal.RequireFromString("29.00"),
	})

	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("-1.00"),
	})

	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestCreateRejectsForeignPet(t *testing.T) {
	f := newBookingFixture(t)
	f.petRepo.pets[9] = &entity.Pet{ID: 9, UserID: uuid.New(), Name: "NotMine", Species: "cat", IsActive: true}

	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           9,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})

	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestCreateRejectsInactivePet(t *testing.T) {
	f := newBookingFixture(t)
	f.petRepo.pets[8] = &entity.Pet{ID: 8, UserID: f.userID, Name: "Retired", Species: "dog", IsActive: false}

	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           8,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})

	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	f := newBookingFixture(t)

	req := &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	}
	_, err := f.usecase.Create(f.ctx, entity.Grooming, req)
	require.NoError(t, err)

	_, err = f.usecase.Create(f.ctx, entity.Grooming, req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateMapsUniqueViolationToConflict(t *testing.T) {
	f := newBookingFixture(t)

	// Another booking occupies the slot but the fake pre-check misses it:
	// the insert's unique violation must still read as a conflict.
	f.bookingRepo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_active_slot"}

	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateAllowsSameSlotAcrossLedgers(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "10:30",
		Price:           decimal.RequireFromString("29.00"),
	})
	require.NoError(t, err)

	_, err = f.usecase.Create(f.ctx, entity.Doctor, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "checkup",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "10:30",
		Price:           decimal.RequireFromString("35.00"),
	})
	assert.NoError(t, err)
}

func TestCreateAllowsReuseOfCancelledSlot(t *testing.T) {
	f := newBookingFixture(t)

	req := &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	}
	first, err := f.usecase.Create(f.ctx, entity.Grooming, req)
	require.NoError(t, err)

	_, err = f.usecase.Cancel(f.ctx, entity.Grooming, first.ID)
	require.NoError(t, err)

	_, err = f.usecase.Create(f.ctx, entity.Grooming, req)
	assert.NoError(t, err)
}

func TestCreateMirrorsWhenReloadFails(t *testing.T) {
	f := newBookingFixture(t)

	// The insert succeeds but the follow-up read fails. The booking exists,
	// so the caller gets a provisional copy instead of an error.
	f.bookingRepo.findErr = assert.AnError

	booking, err := f.usecase.Create(f.ctx, entity.Doctor, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "checkup",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "10:30",
		Price:           decimal.RequireFromString("35.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", booking.Status)

	// Once the ledger read recovers, List reconciles the mirror under the
	// ledger row without duplicating it.
	f.bookingRepo.findErr = nil
	list, err := f.usecase.List(f.ctx, entity.Doctor)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.False(t, list.Bookings[0].Provisional)
}

func TestGetAvailability(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "10:30",
		Price:           decimal.RequireFromString("29.00"),
	})
	require.NoError(t, err)

	availability, err := f.usecase.GetAvailability(context.Background(), entity.Grooming, "2025-07-10")
	require.NoError(t, err)

	require.Len(t, availability.Availability, 16)
	for _, slot := range availability.Availability {
		if slot.TimeSlot == "10:30" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available, "slot %s", slot.TimeSlot)
		}
	}
}

func TestGetAvailabilityEmptyDate(t *testing.T) {
	f := newBookingFixture(t)

	availability, err := f.usecase.GetAvailability(context.Background(), entity.Doctor, "2025-07-10")
	require.NoError(t, err)

	require.Len(t, availability.Availability, 20)
	for _, slot := range availability.Availability {
		assert.True(t, slot.Available)
	}
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.GetAvailability(context.Background(), entity.Grooming, "bad-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetAvailabilitySurfacesStoreFailure(t *testing.T) {
	f := newBookingFixture(t)
	f.bookingRepo.findErr = assert.AnError

	_, err := f.usecase.GetAvailability(context.Background(), entity.Grooming, "2025-07-10")
	assert.Error(t, err)
}

func TestGetScopedToOwner(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})
	require.NoError(t, err)

	otherCtx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())
	_, err = f.usecase.Get(otherCtx, entity.Grooming, created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetScopedToLedger(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})
	require.NoError(t, err)

	// A grooming booking is invisible through the doctor routes.
	_, err = f.usecase.Get(f.ctx, entity.Doctor, created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBooking(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})
	require.NoError(t, err)

	cancelled, err := f.usecase.Cancel(f.ctx, entity.Grooming, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
}

func TestCancelMissingBooking(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.Cancel(f.ctx, entity.Grooming, 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelTerminalBooking(t *testing.T) {
	f := newBookingFixture(t)

	created, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})
	require.NoError(t, err)

	_, err = f.usecase.Cancel(f.ctx, entity.Grooming, created.ID)
	require.NoError(t, err)

	_, err = f.usecase.Cancel(f.ctx, entity.Grooming, created.ID)
	assert.ErrorIs(t, err, ErrBookingFinished)
}

func TestListOnlyCallersBookings(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.Create(f.ctx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           7,
		ServiceType:     "bath",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "09:00",
		Price:           decimal.RequireFromString("29.00"),
	})
	require.NoError(t, err)

	otherID := uuid.New()
	f.petRepo.pets[20] = &entity.Pet{ID: 20, UserID: otherID, Name: "Ziggy", Species: "cat", IsActive: true}
	otherCtx := context.WithValue(context.Background(), middleware.UserIDKey, otherID)
	_, err = f.usecase.Create(otherCtx, entity.Grooming, &dto.CreateBookingRequest{
		PetID:           20,
		ServiceType:     "nail_trim",
		AppointmentDate: "2025-07-10",
		TimeSlot:        "11:00",
		Price:           decimal.RequireFromString("12.00"),
	})
	require.NoError(t, err)

	list, err := f.usecase.List(f.ctx, entity.Grooming)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "bath", list.Bookings[0].ServiceType)
}
