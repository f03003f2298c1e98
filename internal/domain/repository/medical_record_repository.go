package repository

import (
	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.MedicalRecord, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.MedicalRecord, error)
	FindByPetID(db *gorm.DB, petID uuid.UUID) ([]entity.MedicalRecord, error)
	UpdateDoctor(db *gorm.DB, id uuid.UUID, doctorID uuid.UUID) error
	Update(db *gorm.DB, record *entity.MedicalRecord) error
}
