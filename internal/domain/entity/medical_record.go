package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord associates a confirmed appointment with the doctor responsible
// for it, plus clinical notes. At most one row exists per appointment; the
// unique index on appointment_id is what the assignment flow relies on when
// two assigners race.
type MedicalRecord struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_medical_records_appointment;not null" json:"appointment_id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Diagnosis     string     `gorm:"type:text" json:"diagnosis,omitempty"`
	NextCheckup   *time.Time `gorm:"type:date" json:"next_checkup,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Doctor      User        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
