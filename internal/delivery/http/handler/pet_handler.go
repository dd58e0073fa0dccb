package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pawpal-server/internal/delivery/dto"
	"pawpal-server/internal/usecase"
	"pawpal-server/pkg/response"
	"pawpal-server/pkg/validator"

	"github.com/gorilla/mux"
)

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

// Create registers a pet
// @Summary Add a pet
// @Description Register a pet under the caller's account
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePetRequest true "Create Pet Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /pets [post]
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create pet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pet created successfully", pet)
}

// List returns the caller's pets
// @Summary List pets
// @Description List all of the caller's pets
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /pets [get]
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

// Get returns one pet
// @Summary Get a pet
// @Description Get one of the caller's pets by ID
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id} [get]
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	pet, err := h.petUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to get pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet retrieved successfully", pet)
}
