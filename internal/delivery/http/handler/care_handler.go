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

// CareHandler serves the per-pet care history endpoints.
type CareHandler struct {
	careUsecase usecase.CareUsecase
	validator   *validator.CustomValidator
}

func NewCareHandler(careUsecase usecase.CareUsecase, validator *validator.CustomValidator) *CareHandler {
	return &CareHandler{
		careUsecase: careUsecase,
		validator:   validator,
	}
}

// CreateHealthRecord adds a health record to a pet
// @Summary Add a health record
// @Tags Care
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param petId path int true "Pet ID"
// @Param request body dto.CreateHealthRecordRequest true "Create Health Record Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/health-records [post]
func (h *CareHandler) CreateHealthRecord(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.Atoi(mux.Vars(r)["petId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	var req dto.CreateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.careUsecase.CreateHealthRecord(r.Context(), petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to create health record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Health record created successfully", record)
}

// ListHealthRecords lists a pet's health records
// @Summary List health records
// @Tags Care
// @Security BearerAuth
// @Produce json
// @Param petId path int true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/health-records [get]
func (h *CareHandler) ListHealthRecords(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.Atoi(mux.Vars(r)["petId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	records, err := h.careUsecase.ListHealthRecords(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to list health records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health records retrieved successfully", records)
}

// CreateVaccination adds a vaccination to a pet
// @Summary Add a vaccination
// @Tags Care
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param petId path int true "Pet ID"
// @Param request body dto.CreateVaccinationRequest true "Create Vaccination Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/vaccinations [post]
func (h *CareHandler) CreateVaccination(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.Atoi(mux.Vars(r)["petId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	var req dto.CreateVaccinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vaccination, err := h.careUsecase.CreateVaccination(r.Context(), petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to create vaccination")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vaccination created successfully", vaccination)
}

// ListVaccinations lists a pet's vaccinations
// @Summary List vaccinations
// @Tags Care
// @Security BearerAuth
// @Produce json
// @Param petId path int true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/vaccinations [get]
func (h *CareHandler) ListVaccinations(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.Atoi(mux.Vars(r)["petId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	vaccinations, err := h.careUsecase.ListVaccinations(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to list vaccinations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vaccinations retrieved successfully", vaccinations)
}

// CreateDietPlan adds a diet plan to a pet
// @Summary Add a diet plan
// @Tags Care
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param petId path int true "Pet ID"
// @Param request body dto.CreateDietPlanRequest true "Create Diet Plan Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/diet-plans [post]
func (h *CareHandler) CreateDietPlan(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.Atoi(mux.Vars(r)["petId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	var req dto.CreateDietPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.careUsecase.CreateDietPlan(r.Context(), petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to create diet plan")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Diet plan created successfully", plan)
}

// ListDietPlans lists a pet's diet plans
// @Summary List diet plans
// @Tags Care
// @Security BearerAuth
// @Produce json
// @Param petId path int true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{petId}/diet-plans [get]
func (h *CareHandler) ListDietPlans(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.Atoi(mux.Vars(r)["petId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	plans, err := h.careUsecase.ListDietPlans(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to list diet plans")
		}
		return
	}

	response.Success(w, http.StatusOK, "Diet plans retrieved successfully", plans)
}
