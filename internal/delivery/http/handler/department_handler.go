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

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	validator         *validator.CustomValidator
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUsecase: departmentUsecase,
		validator:         validator,
	}
}

func (h *DepartmentHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	department, err := h.departmentUsecase.GetDepartment(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to get department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", department)
}

func (h *DepartmentHandler) RegisterPhysician(w http.ResponseWriter, r *http.Request) {
	departmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	var req dto.RegisterPhysicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	physician, err := h.departmentUsecase.RegisterPhysician(r.Context(), departmentID, &req)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(w, http.StatusBadRequest, validationErr.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrInvalidBirthDate:
			response.Error(w, http.StatusBadRequest, "Invalid birth date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to register physician")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Physician registered successfully", physician)
}

func (h *DepartmentHandler) AssignPhysician(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	departmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}
	physicianID, err := uuid.Parse(vars["physicianId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid physician ID", nil)
		return
	}

	if err := h.departmentUsecase.AssignPhysician(r.Context(), departmentID, physicianID); err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrPhysicianNotFound:
			response.NotFound(w, "Physician not found")
		default:
			response.InternalServerError(w, "Failed to assign physician")
		}
		return
	}

	response.Success(w, http.StatusOK, "Physician assigned successfully", nil)
}

func (h *DepartmentHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	departmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	var req dto.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.departmentUsecase.CreateRoom(r.Context(), departmentID, &req)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			response.Error(w, http.StatusBadRequest, validationErr.Error(), nil)
			return
		}
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to create room")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

func (h *DepartmentHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	room, err := h.departmentUsecase.GetRoom(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		default:
			response.InternalServerError(w, "Failed to get room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

func (h *DepartmentHandler) GetPhysician(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid physician ID", nil)
		return
	}

	physician, err := h.departmentUsecase.GetPhysician(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPhysicianNotFound:
			response.NotFound(w, "Physician not found")
		default:
			response.InternalServerError(w, "Failed to get physician")
		}
		return
	}

	response.Success(w, http.StatusOK, "Physician retrieved successfully", physician)
}
