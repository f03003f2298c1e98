package handler

import (
	"encoding/json"
	"net/http"

	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/usecase"
	"petclinic-api/pkg/response"
	"petclinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AssignmentHandler struct {
	assignmentUsecase usecase.AssignmentUsecase
	validator         *validator.CustomValidator
}

func NewAssignmentHandler(assignmentUsecase usecase.AssignmentUsecase, validator *validator.CustomValidator) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUsecase: assignmentUsecase,
		validator:         validator,
	}
}

// AssignDoctor handles doctor assignment for an appointment
// @Summary Assign a doctor to an appointment
// @Description Associate a doctor with an appointment and confirm it
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.AssignDoctorRequest true "Assign Doctor Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/appointments/{id}/assign [post]
func (h *AssignmentHandler) AssignDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.AssignDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.assignmentUsecase.AssignDoctor(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrAccountDisabled:
			response.Conflict(w, "Doctor account is disabled")
		case usecase.ErrAppointmentClosed:
			response.Conflict(w, "Appointment is already completed or cancelled")
		default:
			response.InternalServerError(w, "Failed to assign doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor assigned successfully", appointment)
}

// ListDoctors lists the active doctors available for assignment
// @Summary List doctors
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /staff/doctors [get]
func (h *AssignmentHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.assignmentUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
