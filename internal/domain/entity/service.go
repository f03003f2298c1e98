package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceCategory groups clinic services by line of business
type ServiceCategory string

const (
	ServiceCategoryVeterinary ServiceCategory = "veterinary"
	ServiceCategoryGrooming   ServiceCategory = "grooming"
	ServiceCategoryBoarding   ServiceCategory = "boarding"
)

// Service represents a bookable clinic service (e.g. general checkup)
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Category    ServiceCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	IsActive    *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Options []ServiceOption `gorm:"foreignKey:ServiceID" json:"options,omitempty"`
}

func (Service) TableName() string {
	return "services"
}

// ServiceOption is a priced variant of a service (e.g. checkup, 30 min)
type ServiceOption struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ServiceID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"service_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
	IsActive        *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (ServiceOption) TableName() string {
	return "service_options"
}
