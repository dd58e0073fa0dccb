package converter

import (
	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:               booking.ID,
		UserID:           booking.UserID,
		PetID:            booking.PetID,
		Ledger:           booking.Ledger,
		ServiceType:      booking.ServiceType,
		AppointmentDate:  booking.AppointmentDate,
		TimeSlot:         booking.TimeSlot,
		Price:            booking.Price,
		Status:           string(booking.Status),
		Notes:            booking.Notes,
		VeterinarianName: booking.VeterinarianName,
		ClinicName:       booking.ClinicName,
		Provisional:      booking.Provisional,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}

	// Include pet info if preloaded
	if booking.Pet.ID != 0 {
		response.Pet = PetToResponse(&booking.Pet)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
