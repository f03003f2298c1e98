package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled clinic visit for one pet.
// Appointments are never hard-deleted; cancellation is a status transition.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	PetID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"pet_id"`
	ServiceOptionID uuid.UUID         `gorm:"type:uuid;not null;index" json:"service_option_id"`
	ScheduledAt     time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Symptoms        string            `gorm:"type:text" json:"symptoms,omitempty"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer      User           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Pet           Pet            `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	ServiceOption ServiceOption  `gorm:"foreignKey:ServiceOptionID" json:"service_option,omitempty"`
	MedicalRecord *MedicalRecord `gorm:"foreignKey:AppointmentID" json:"medical_record,omitempty"`
	Payment       *Payment       `gorm:"foreignKey:AppointmentID" json:"payment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is awaiting doctor assignment
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsClosed checks if the appointment can no longer change
func (a *Appointment) IsClosed() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}
