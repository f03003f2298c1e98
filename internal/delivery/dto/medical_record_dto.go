package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateMedicalRecordRequest lets the assigned doctor fill in clinical notes
type UpdateMedicalRecordRequest struct {
	Diagnosis   string `json:"diagnosis" validate:"omitempty"`
	NextCheckup string `json:"next_checkup" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            uuid.UUID  `json:"id"`
	AppointmentID uuid.UUID  `json:"appointment_id"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	DoctorName    string     `json:"doctor_name,omitempty"`
	Diagnosis     string     `json:"diagnosis,omitempty"`
	NextCheckup   *time.Time `json:"next_checkup,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
