package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents a customer-owned pet profile
type Pet struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Species     string     `gorm:"type:varchar(50);not null" json:"species"`
	Breed       string     `gorm:"type:varchar(100)" json:"breed,omitempty"`
	Gender      string     `gorm:"type:char(1);not null" json:"gender"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner        User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PetID" json:"appointments,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
