package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pawpal-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for per-user mirror lists
	mirrorKeyPrefix = "booking:mirror:"

	// Provisional entries expire on their own if never reconciled
	mirrorTTL = 30 * 24 * time.Hour
)

// NaturalKey identifies a booking when no shared id exists: same pet, same
// ledger, same date and slot, same service.
type NaturalKey struct {
	PetID       int
	Ledger      string
	Date        string
	TimeSlot    string
	ServiceType string
}

// NaturalKeyOf derives the natural key of a booking row.
func NaturalKeyOf(b *entity.Booking) NaturalKey {
	return NaturalKey{
		PetID:       b.PetID,
		Ledger:      b.Ledger,
		Date:        b.AppointmentDate,
		TimeSlot:    b.TimeSlot,
		ServiceType: b.ServiceType,
	}
}

// BookingMirror keeps a best-effort, per-user mirror of bookings whose
// create flow could not be fully confirmed (the insert committed but the
// post-insert re-read failed). Mirrored entries are provisional: at read
// time they are merged under ledger rows and dropped as soon as a ledger
// row with the same identity or natural key appears.
type BookingMirror struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewBookingMirror(redisClient *redis.Client, log *logrus.Logger) *BookingMirror {
	return &BookingMirror{
		redisClient: redisClient,
		log:         log,
	}
}

// Remember stores a provisional entry, replacing any existing entry with the
// same id first.
func (s *BookingMirror) Remember(ctx context.Context, userID uuid.UUID, booking *entity.Booking) error {
	entries, err := s.Entries(ctx, userID)
	if err != nil {
		return err
	}

	next := make([]entity.Booking, 0, len(entries)+1)
	provisional := *booking
	provisional.Provisional = true
	next = append(next, provisional)
	for _, e := range entries {
		if e.ID == booking.ID {
			continue
		}
		next = append(next, e)
	}

	return s.store(ctx, userID, next)
}

// Forget removes every entry matching the id or the natural key.
func (s *BookingMirror) Forget(ctx context.Context, userID uuid.UUID, id int, key NaturalKey) error {
	entries, err := s.Entries(ctx, userID)
	if err != nil {
		return err
	}

	next := make([]entity.Booking, 0, len(entries))
	for _, e := range entries {
		if e.ID == id || NaturalKeyOf(&e) == key {
			continue
		}
		next = append(next, e)
	}
	if len(next) == len(entries) {
		return nil
	}

	return s.store(ctx, userID, next)
}

// Entries returns the user's mirrored bookings, newest first.
func (s *BookingMirror) Entries(ctx context.Context, userID uuid.UUID) ([]entity.Booking, error) {
	raw, err := s.redisClient.Get(ctx, mirrorKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("read mirror for user %s: %w", userID, err)
	}

	var entries []entity.Booking
	if err := json.Unmarshal(raw, &entries); err != nil {
		// A corrupt mirror is best-effort state; drop it rather than
		// poisoning every list call.
		s.log.Warnf("Dropping corrupt booking mirror for user %s: %+v", userID, err)
		if delErr := s.redisClient.Del(ctx, mirrorKey(userID)).Err(); delErr != nil {
			s.log.Warnf("Failed to delete corrupt mirror for user %s: %+v", userID, delErr)
		}
		return nil, nil
	}

	for i := range entries {
		entries[i].Provisional = true
	}
	return entries, nil
}

func (s *BookingMirror) store(ctx context.Context, userID uuid.UUID, entries []entity.Booking) error {
	if len(entries) == 0 {
		return s.redisClient.Del(ctx, mirrorKey(userID)).Err()
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal mirror for user %s: %w", userID, err)
	}
	if err := s.redisClient.Set(ctx, mirrorKey(userID), raw, mirrorTTL).Err(); err != nil {
		return fmt.Errorf("write mirror for user %s: %w", userID, err)
	}
	return nil
}

func mirrorKey(userID uuid.UUID) string {
	return mirrorKeyPrefix + userID.String()
}

// Merge reconciles ledger rows with mirrored entries. A ledger row always
// wins; a mirrored entry survives only while no ledger row shares its id or
// natural key. The optional optimistic entry follows the same rule and is
// prepended so a just-created booking shows first.
func Merge(server, local []entity.Booking, optimistic *entity.Booking) []entity.Booking {
	merged := make([]entity.Booking, 0, len(server)+len(local)+1)
	merged = append(merged, server...)

	for _, l := range local {
		if containsBooking(merged, &l) {
			continue
		}
		merged = append(merged, l)
	}

	if optimistic != nil && !containsBooking(merged, optimistic) {
		merged = append([]entity.Booking{*optimistic}, merged...)
	}

	return merged
}

func containsBooking(list []entity.Booking, b *entity.Booking) bool {
	key := NaturalKeyOf(b)
	for i := range list {
		if list[i].ID == b.ID || NaturalKeyOf(&list[i]) == key {
			return true
		}
	}
	return false
}
