package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/domain/entity"
	"pawpal-server/internal/usecase"
	"pawpal-server/pkg/response"
	"pawpal-server/pkg/validator"

	"github.com/gorilla/mux"
)

// BookingHandler serves both booking ledgers. Each route binds a ledger
// descriptor at registration time, so grooming and doctor visit endpoints
// share one implementation.
type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// Availability returns the slot grid for a date
// @Summary Get slot availability
// @Description List every slot of the ledger's grid for a date with its availability. Public.
// @Tags Bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /{ledger}/availability [get]
func (h *BookingHandler) Availability(ledger entity.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
			return
		}

		availability, err := h.bookingUsecase.GetAvailability(r.Context(), ledger, date)
		if err != nil {
			switch err {
			case usecase.ErrInvalidDate:
				response.Error(w, http.StatusBadRequest, err.Error(), nil)
			default:
				response.InternalServerError(w, "Failed to get availability")
			}
			return
		}

		response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
	}
}

// Create books a slot
// @Summary Create a booking
// @Description Book a slot for one of the caller's pets
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /{ledger} [post]
func (h *BookingHandler) Create(ledger entity.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}

		if err := h.validator.Validate(&req); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}

		booking, err := h.bookingUsecase.Create(r.Context(), ledger, &req)
		if err != nil {
			switch err {
			case usecase.ErrInvalidDate, usecase.ErrUnknownService, usecase.ErrUnknownSlot, usecase.ErrNegativePrice:
				response.Error(w, http.StatusBadRequest, err.Error(), nil)
			case usecase.ErrPetNotFound:
				response.NotFound(w, "Pet not found")
			case usecase.ErrSlotTaken:
				response.Error(w, http.StatusConflict, "Selected time slot is not available", nil)
			default:
				response.InternalServerError(w, "Failed to create booking")
			}
			return
		}

		response.Success(w, http.StatusCreated, "Booking created successfully", booking)
	}
}

// List returns the caller's bookings
// @Summary List bookings
// @Description List the caller's bookings for the ledger, newest first
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /{ledger} [get]
func (h *BookingHandler) List(ledger entity.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := h.bookingUsecase.List(r.Context(), ledger)
		if err != nil {
			response.InternalServerError(w, "Failed to list bookings")
			return
		}

		response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
	}
}

// Get returns one booking
// @Summary Get a booking
// @Description Get one of the caller's bookings by ID
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{ledger}/{id} [get]
func (h *BookingHandler) Get(ledger entity.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
			return
		}

		booking, err := h.bookingUsecase.Get(r.Context(), ledger, id)
		if err != nil {
			switch err {
			case usecase.ErrBookingNotFound:
				response.NotFound(w, "Booking not found")
			default:
				response.InternalServerError(w, "Failed to get booking")
			}
			return
		}

		response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
	}
}

// Cancel cancels an active booking
// @Summary Cancel a booking
// @Description Move an active booking to cancelled, freeing its slot
// @Tags Bookings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /{ledger}/{id}/cancel [patch]
func (h *BookingHandler) Cancel(ledger entity.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
			return
		}

		booking, err := h.bookingUsecase.Cancel(r.Context(), ledger, id)
		if err != nil {
			switch err {
			case usecase.ErrBookingNotFound:
				response.NotFound(w, "Booking not found")
			case usecase.ErrBookingFinished:
				response.Error(w, http.StatusConflict, "Booking is already cancelled or completed", nil)
			default:
				response.InternalServerError(w, "Failed to cancel booking")
			}
			return
		}

		response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
	}
}
