package usecase

import (
	"context"
	"errors"

	"pawpal-server/internal/converter"
	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/delivery/http/middleware"
	"pawpal-server/internal/domain/entity"
	"pawpal-server/internal/domain/repository"
	"pawpal-server/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPetNotFound     = errors.New("pet not found")
	ErrSlotTaken       = errors.New("selected time slot is not available")
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingFinished = errors.New("booking is already cancelled or completed")
	ErrInvalidDate     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrUnknownService  = errors.New("unknown service type for this ledger")
	ErrUnknownSlot     = errors.New("time slot is outside the bookable grid")
	ErrNegativePrice   = errors.New("price must not be negative")
)

type BookingUsecase interface {
	// GetAvailability is the one unauthenticated read: prospective bookers
	// see the grid before signing in.
	GetAvailability(ctx context.Context, ledger entity.Ledger, date string) (*dto.AvailabilityResponse, error)
	Create(ctx context.Context, ledger entity.Ledger, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	List(ctx context.Context, ledger entity.Ledger) (*dto.BookingListResponse, error)
	Get(ctx context.Context, ledger entity.Ledger, bookingID int) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, ledger entity.Ledger, bookingID int) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	petRepo     repository.PetRepository
	mirror      *service.BookingMirror
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	petRepo repository.PetRepository,
	mirror *service.BookingMirror,
) BookingUsecase {
	return &bookingUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		petRepo:     petRepo,
		mirror:      mirror,
	}
}

// GetAvailability returns every slot of the ledger's grid for the date,
// marked unavailable when a pending or confirmed booking holds it. Past
// dates are accepted and simply show no conflicts. A ledger failure is
// surfaced rather than read as fully available.
func (u *bookingUsecase) GetAvailability(ctx context.Context, ledger entity.Ledger, date string) (*dto.AvailabilityResponse, error) {
	if !entity.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	taken, err := u.bookingRepo.FindTakenSlots(u.db.WithContext(ctx), ledger.Name, date)
	if err != nil {
		u.log.Warnf("Failed to fetch taken slots for %s %s: %+v", ledger.Name, date, err)
		return nil, err
	}

	takenSet := make(map[string]struct{}, len(taken))
	for _, slot := range taken {
		takenSet[slot] = struct{}{}
	}

	slots := ledger.Slots()
	availability := make([]dto.SlotAvailability, len(slots))
	for i, slot := range slots {
		_, busy := takenSet[slot]
		availability[i] = dto.SlotAvailability{TimeSlot: slot, Available: !busy}
	}

	return &dto.AvailabilityResponse{Date: date, Availability: availability}, nil
}

// Create books a slot for one of the caller's pets.
//
// Flow:
// 1. Validate date, service vocabulary, slot grid membership and price
// 2. Verify the pet belongs to the caller and is active
// 3. Pre-check the slot for an existing pending/confirmed booking
// 4. Insert with status confirmed; the partial unique index on active
//    (ledger, date, slot) rows closes the pre-check race, and a unique
//    violation maps to the same conflict error
func (u *bookingUsecase) Create(ctx context.Context, ledger entity.Ledger, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if !entity.ValidDate(req.AppointmentDate) {
		return nil, ErrInvalidDate
	}
	if !ledger.HasService(req.ServiceType) {
		return nil, ErrUnknownService
	}
	if !ledger.HasSlot(req.TimeSlot) {
		return nil, ErrUnknownSlot
	}
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	pet, err := u.petRepo.FindOwnedActive(u.db.WithContext(ctx), req.PetID, userID)
	if err != nil {
		u.log.Warnf("Failed to check pet %d ownership: %+v", req.PetID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	existing, err := u.bookingRepo.FindActiveSlot(u.db.WithContext(ctx), ledger.Name, req.AppointmentDate, req.TimeSlot)
	if err != nil {
		u.log.Warnf("Failed to check slot %s %s: %+v", req.AppointmentDate, req.TimeSlot, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	booking := &entity.Booking{
		UserID:           userID,
		PetID:            req.PetID,
		Ledger:           ledger.Name,
		ServiceType:      req.ServiceType,
		AppointmentDate:  req.AppointmentDate,
		TimeSlot:         req.TimeSlot,
		Price:            req.Price,
		Status:           entity.BookingStatusConfirmed,
		Notes:            req.Notes,
		VeterinarianName: req.VeterinarianName,
		ClinicName:       req.ClinicName,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		if isUniqueViolation(err) {
			// Lost the race after the pre-check; same outcome for the caller.
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to insert booking: %+v", err)
		return nil, err
	}

	// Reload with pet info for the response. The insert already committed,
	// so a reload failure must not read as a failed create: mirror the row
	// as provisional and answer from memory.
	full, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), ledger.Name, booking.ID, userID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %d, mirroring as provisional: %+v", booking.ID, err)
		if mirrorErr := u.mirror.Remember(ctx, userID, booking); mirrorErr != nil {
			u.log.Warnf("Failed to mirror booking %d: %+v", booking.ID, mirrorErr)
		}
		booking.Provisional = true
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking created: id=%d, ledger=%s, date=%s, slot=%s", full.ID, ledger.Name, req.AppointmentDate, req.TimeSlot)
	return converter.BookingToResponse(full), nil
}

// List returns the caller's bookings, newest date and slot first, merged
// with any provisional mirror entries. Ledger rows always win; a mirror
// entry survives only while no ledger row shares its id or natural key.
func (u *bookingUsecase) List(ctx context.Context, ledger entity.Ledger) (*dto.BookingListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	bookings, err := u.bookingRepo.FindByUserID(u.db.WithContext(ctx), ledger.Name, userID)
	if err != nil {
		u.log.Warnf("Failed to list bookings for user %s: %+v", userID, err)
		return nil, err
	}

	local, err := u.mirror.Entries(ctx, userID)
	if err != nil {
		// The mirror is best-effort; the ledger answer stands on its own.
		u.log.Warnf("Failed to read booking mirror for user %s: %+v", userID, err)
		local = nil
	}
	mirrored := make([]entity.Booking, 0, len(local))
	for _, e := range local {
		if e.Ledger == ledger.Name {
			mirrored = append(mirrored, e)
		}
	}

	merged := service.Merge(bookings, mirrored, nil)

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(merged),
		Total:    len(merged),
	}, nil
}

func (u *bookingUsecase) Get(ctx context.Context, ledger entity.Ledger, bookingID int) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), ledger.Name, bookingID, userID)
	if err != nil {
		u.log.Warnf("Failed to find booking %d: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking), nil
}

// Cancel moves an active booking to cancelled. Terminal bookings fail with
// ErrBookingFinished; the status filter in the update makes a concurrent
// double-cancel lose cleanly.
func (u *bookingUsecase) Cancel(ctx context.Context, ledger entity.Ledger, bookingID int) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), ledger.Name, bookingID, userID)
	if err != nil {
		u.log.Warnf("Failed to find booking %d: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.IsTerminal() {
		return nil, ErrBookingFinished
	}

	rows, err := u.bookingRepo.CancelActive(u.db.WithContext(ctx), bookingID, userID)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %d: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBookingFinished
	}

	if err := u.mirror.Forget(ctx, userID, bookingID, service.NaturalKeyOf(booking)); err != nil {
		// Non-fatal: a stale mirror entry is dropped on the next merge.
		u.log.Warnf("Failed to forget mirrored booking %d: %+v", bookingID, err)
	}

	updated, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), ledger.Name, bookingID, userID)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload cancelled booking %d: %+v", bookingID, err)
		booking.Cancel()
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking cancelled: id=%d, ledger=%s", bookingID, ledger.Name)
	return converter.BookingToResponse(updated), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
