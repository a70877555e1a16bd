package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.CreateHospital(r.Context(), &req)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(w, http.StatusBadRequest, validationErr.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to create hospital")
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.GetHospital(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to get hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.ListHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	if err := h.hospitalUsecase.DeleteHospital(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to delete hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital deleted successfully", nil)
}

func (h *HospitalHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.hospitalUsecase.CreateDepartment(r.Context(), hospitalID, &req)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(w, http.StatusBadRequest, validationErr.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to create department")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

func (h *HospitalHandler) AttachDepartment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}
	departmentID, err := uuid.Parse(vars["departmentId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	if err := h.hospitalUsecase.AttachDepartment(r.Context(), hospitalID, departmentID); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to attach department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department attached successfully", nil)
}

func (h *HospitalHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.hospitalUsecase.RegisterPatient(r.Context(), hospitalID, &req)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(w, http.StatusBadRequest, validationErr.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrInvalidBirthDate:
			response.Error(w, http.StatusBadRequest, "Invalid birth date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

func (h *HospitalHandler) AdmitPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}
	patientID, err := uuid.Parse(vars["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	if err := h.hospitalUsecase.AdmitPatient(r.Context(), hospitalID, patientID); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to admit patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient admitted successfully", nil)
}
