package repository

import (
	"errors"

	"petclinic-api/internal/domain/entity"
	domainRepo "petclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Pet").
		Preload("ServiceOption.Service").
		Preload("MedicalRecord.Doctor").
		Preload("Payment").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Pet").
		Preload("ServiceOption.Service").
		Preload("MedicalRecord.Doctor").
		Preload("Payment").
		Where("customer_id = ?", customerID).
		Order("scheduled_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Joins("JOIN medical_records ON medical_records.appointment_id = appointments.id").
		Where("medical_records.doctor_id = ?", doctorID).
		Preload("Pet.Owner").
		Preload("ServiceOption.Service").
		Preload("MedicalRecord").
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *domainRepo.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{})
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.DateFrom != nil {
			query = query.Where("scheduled_at >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("scheduled_at < ?", *filter.DateTo)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := query.Preload("Pet.Owner").
		Preload("ServiceOption.Service").
		Preload("MedicalRecord.Doctor").
		Preload("Payment").
		Limit(limit).Offset(offset).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) Confirm(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status NOT IN ?", id,
			[]entity.AppointmentStatus{entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled}).
		Update("status", entity.AppointmentStatusConfirmed)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Cancel(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status NOT IN ?", id,
			[]entity.AppointmentStatus{entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled}).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Complete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusConfirmed).
		Update("status", entity.AppointmentStatusCompleted)
	return result.RowsAffected, result.Error
}
