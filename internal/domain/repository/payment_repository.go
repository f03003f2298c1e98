package repository

import (
	"time"

	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Payment, error)
	FindAll(db *gorm.DB, status entity.PaymentStatus, limit, offset int) ([]entity.Payment, int64, error)
	// Settle atomically flips a pending payment to completed. Returns
	// affected rows: 1 = settled, 0 = not pending anymore.
	Settle(db *gorm.DB, id uuid.UUID, method string, paidAt time.Time) (int64, error)
	// VoidByAppointmentID voids a still-pending payment when its appointment
	// is cancelled. Settled payments are left alone.
	VoidByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (int64, error)
}
