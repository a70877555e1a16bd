package handler

import (
	"errors"
	"net/http"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportingUsecase usecase.ReportingUsecase
}

func NewReportHandler(reportingUsecase usecase.ReportingUsecase) *ReportHandler {
	return &ReportHandler{
		reportingUsecase: reportingUsecase,
	}
}

func (h *ReportHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportingUsecase.Stats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}

func (h *ReportHandler) GetPhysiciansBySpecialty(w http.ResponseWriter, r *http.Request) {
	specialty := mux.Vars(r)["specialty"]

	physicians, err := h.reportingUsecase.PhysiciansBySpecialty(r.Context(), specialty)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(w, http.StatusBadRequest, validationErr.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to list physicians")
		return
	}

	response.Success(w, http.StatusOK, "Physicians retrieved successfully", physicians)
}

func (h *ReportHandler) GetAppointmentsByTime(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.reportingUsecase.AppointmentsByTime(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
