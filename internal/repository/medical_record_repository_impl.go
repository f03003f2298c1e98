package repository

import (
	"errors"

	"petclinic-api/internal/domain/entity"
	domainRepo "petclinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Preload("Doctor").Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Where("appointment_id = ?", appointmentID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Preload("Appointment.Pet").
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) FindByPetID(db *gorm.DB, petID uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Joins("JOIN appointments ON appointments.id = medical_records.appointment_id").
		Where("appointments.pet_id = ?", petID).
		Preload("Doctor").
		Preload("Appointment").
		Order("medical_records.created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) UpdateDoctor(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) error {
	return db.Model(&entity.MedicalRecord{}).
		Where("id = ?", id).
		Update("doctor_id", doctorID).Error
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Save(record).Error
}
