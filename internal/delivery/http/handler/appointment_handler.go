package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"
	"petclinic-api/internal/domain/repository"
	"petclinic-api/internal/usecase"
	"petclinic-api/pkg/response"
	"petclinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create handles appointment booking
// @Summary Book an appointment
// @Description Book a service for one of the caller's pets
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetNotOwned:
			response.Forbidden(w, "Pet belongs to another customer")
		case usecase.ErrServiceOptionNotFound:
			response.NotFound(w, "Service option not found")
		case usecase.ErrScheduledInPast:
			response.Error(w, http.StatusBadRequest, "Cannot book an appointment in the past", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// GetMine lists the caller's appointments
// @Summary List my appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetWorklist lists appointments assigned to the calling doctor
// @Summary List my assigned appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/appointments [get]
func (h *AppointmentHandler) GetWorklist(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetDoctorAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Get returns a single appointment
// @Summary Get appointment by ID
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment belongs to another customer")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// GetAll lists appointments for the back office with optional filters
// @Summary List all appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param date_from query string false "Filter from date (YYYY-MM-DD)"
// @Param date_to query string false "Filter to date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /staff/appointments [get]
func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filterReq := dto.AppointmentFilterRequest{
		Status:   query.Get("status"),
		DateFrom: query.Get("date_from"),
		DateTo:   query.Get("date_to"),
	}
	if err := h.validator.Validate(&filterReq); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	filter := &repository.AppointmentFilter{
		Status: entity.AppointmentStatus(filterReq.Status),
	}
	if filterReq.DateFrom != "" {
		from, _ := time.Parse("2006-01-02", filterReq.DateFrom)
		filter.DateFrom = &from
	}
	if filterReq.DateTo != "" {
		to, _ := time.Parse("2006-01-02", filterReq.DateTo)
		filter.DateTo = &to
	}

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	appointments, total, err := h.appointmentUsecase.GetAllAppointments(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, meta)
}

// Cancel handles appointment cancellation
// @Summary Cancel an appointment
// @Description Cancel an open appointment and void its pending payment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.CancelAppointment(r.Context(), appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment belongs to another customer")
		case usecase.ErrAppointmentClosed:
			response.Conflict(w, "Appointment is already completed or cancelled")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// Complete lets the assigned doctor close out a confirmed appointment
// @Summary Complete an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctor/appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.CompleteAppointment(r.Context(), appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotAssignedDoctor:
			response.Forbidden(w, "Appointment is assigned to another doctor")
		case usecase.ErrAppointmentNotConfirmed:
			response.Conflict(w, "Appointment is not confirmed")
		default:
			response.InternalServerError(w, "Failed to complete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", nil)
}
