package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// PatientHandler serves patient lookup and the clinical record endpoints.
// Registration itself lives on the hospital routes because a patient is
// always registered under a hospital.
type PatientHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	recordUsecase   usecase.ClinicalRecordUsecase
	validator       *validator.CustomValidator
}

func NewPatientHandler(hospitalUsecase usecase.HospitalUsecase, recordUsecase usecase.ClinicalRecordUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		hospitalUsecase: hospitalUsecase,
		recordUsecase:   recordUsecase,
		validator:       validator,
	}
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.hospitalUsecase.GetPatient(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	record, err := h.recordUsecase.GetRecord(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Clinical record not found")
		default:
			response.InternalServerError(w, "Failed to get clinical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinical record retrieved successfully", record)
}

func (h *PatientHandler) AddDiagnosis(w http.ResponseWriter, r *http.Request) {
	h.addEntry(w, r, h.recordUsecase.AddDiagnosis, "diagnosis")
}

func (h *PatientHandler) AddTreatment(w http.ResponseWriter, r *http.Request) {
	h.addEntry(w, r, h.recordUsecase.AddTreatment, "treatment")
}

func (h *PatientHandler) AddAllergy(w http.ResponseWriter, r *http.Request) {
	h.addEntry(w, r, h.recordUsecase.AddAllergy, "allergy")
}

type addEntryFunc func(ctx context.Context, patientID uuid.UUID, text string) (*dto.ClinicalRecordResponse, error)

func (h *PatientHandler) addEntry(w http.ResponseWriter, r *http.Request, add addEntryFunc, kind string) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.AddRecordEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	record, err := add(r.Context(), id, req.Text)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Clinical record not found")
		default:
			response.InternalServerError(w, "Failed to add "+kind)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Clinical record updated successfully", record)
}
