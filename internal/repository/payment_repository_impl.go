package repository

import (
	"errors"
	"time"

	"petclinic-api/internal/domain/entity"
	domainRepo "petclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Preload("Appointment.Pet").
		Where("id = ?", id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("appointment_id = ?", appointmentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(db *gorm.DB, status entity.PaymentStatus, limit, offset int) ([]entity.Payment, int64, error) {
	query := db.Model(&entity.Payment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []entity.Payment
	err := query.Preload("Appointment.Pet").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *paymentRepository) Settle(db *gorm.DB, id uuid.UUID, method string, paidAt time.Time) (int64, error) {
	result := db.Model(&entity.Payment{}).
		Where("id = ? AND status = ?", id, entity.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":  entity.PaymentStatusCompleted,
			"method":  method,
			"paid_at": paidAt,
		})
	return result.RowsAffected, result.Error
}

func (r *paymentRepository) VoidByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Payment{}).
		Where("appointment_id = ? AND status = ?", appointmentID, entity.PaymentStatusPending).
		Update("status", entity.PaymentStatusVoid)
	return result.RowsAffected, result.Error
}
