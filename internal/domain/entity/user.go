package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// Doctors carry a specialization, everyone else leaves it empty.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID         int       `gorm:"not null;index" json:"role_id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber    string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Specialization string    `gorm:"type:varchar(100)" json:"specialization,omitempty"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role Role  `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Pets []Pet `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor checks if the user carries the doctor role
func (u *User) IsDoctor() bool {
	return u.RoleID == RoleIDDoctor
}

// IsCustomer checks if the user carries the customer role
func (u *User) IsCustomer() bool {
	return u.RoleID == RoleIDCustomer
}
