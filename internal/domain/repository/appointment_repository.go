package repository

import (
	"time"

	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentFilter narrows staff/admin appointment listings
type AppointmentFilter struct {
	Status   entity.AppointmentStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB, filter *AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error)
	// Confirm flips status to confirmed unless the appointment is already
	// closed. Returns affected rows: 0 means it was completed or cancelled
	// underneath us.
	Confirm(db *gorm.DB, id uuid.UUID) (int64, error)
	// Cancel flips status to cancelled ONLY while the appointment is still
	// open. Returns affected rows: 1 = success, 0 = already closed.
	Cancel(db *gorm.DB, id uuid.UUID) (int64, error)
	// Complete flips status from confirmed to completed.
	Complete(db *gorm.DB, id uuid.UUID) (int64, error)
}
