package handler

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// DoctorQueue returns today's queue for the doctor's assigned clinic
func (h *ReportHandler) DoctorQueue(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	queue, err := h.reportUsecase.DoctorQueue(r.Context(), &identity)
	if err != nil {
		switch err {
		case usecase.ErrNoAssignedClinic:
			response.Forbidden(w, "No assigned clinic")
		default:
			response.InternalServerError(w, "Failed to build queue")
		}
		return
	}

	response.Success(w, http.StatusOK, "Queue retrieved successfully", queue)
}

// DoctorDashboard returns the clinic-scoped daily figures
func (h *ReportHandler) DoctorDashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.reportUsecase.DoctorDashboard(r.Context(), &identity)
	if err != nil {
		switch err {
		case usecase.ErrNoAssignedClinic:
			response.Forbidden(w, "No assigned clinic")
		default:
			response.InternalServerError(w, "Failed to build dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// ManagerDashboard returns the practice-wide aggregates
func (h *ReportHandler) ManagerDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportUsecase.ManagerDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// ReceptionDashboard returns the front-desk summary
func (h *ReportHandler) ReceptionDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportUsecase.ReceptionDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// RevenueReport returns the manager revenue report
func (h *ReportHandler) RevenueReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.RevenueReport(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build revenue report")
		return
	}

	response.Success(w, http.StatusOK, "Revenue report retrieved successfully", report)
}
