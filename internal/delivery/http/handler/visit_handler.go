package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/gorilla/mux"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

// CreateVisit records a visit and its chained revenue entry
func (h *VisitHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.AddVisit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		default:
			response.Error(w, http.StatusBadGateway, "Failed to register visit", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Visit registered successfully", visit)
}

// ListVisits returns the visit registry
func (h *VisitHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.visitUsecase.ListVisits(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

// OpenVisit marks a queue entry in progress when the doctor takes it up
func (h *VisitHandler) OpenVisit(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	visitID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit id", nil)
		return
	}

	visit, err := h.visitUsecase.OpenVisit(r.Context(), visitID, &identity)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrVisitNotInClinic:
			response.Forbidden(w, "Visit belongs to another clinic")
		case usecase.ErrVisitCompleted:
			response.Error(w, http.StatusConflict, "Visit already has a recorded diagnosis", nil)
		default:
			response.InternalServerError(w, "Failed to open visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit opened", visit)
}
