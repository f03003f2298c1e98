package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PetID           uuid.UUID `json:"pet_id" validate:"required"`
	ServiceOptionID uuid.UUID `json:"service_option_id" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	Symptoms        string    `json:"symptoms" validate:"omitempty"`
}

// AssignDoctorRequest picks the doctor responsible for an appointment
type AssignDoctorRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
}

type AppointmentFilterRequest struct {
	Status   string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	DateFrom string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            uuid.UUID              `json:"id"`
	CustomerID    uuid.UUID              `json:"customer_id"`
	ScheduledAt   time.Time              `json:"scheduled_at"`
	Symptoms      string                 `json:"symptoms,omitempty"`
	Status        string                 `json:"status"`
	Pet           *PetResponse           `json:"pet,omitempty"`
	ServiceOption *ServiceOptionResponse `json:"service_option,omitempty"`
	MedicalRecord *MedicalRecordResponse `json:"medical_record,omitempty"`
	Payment       *PaymentResponse       `json:"payment,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
