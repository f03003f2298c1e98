package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Category    string `json:"category" validate:"required,oneof=veterinary grooming boarding"`
}

type UpdateServiceRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Category    string `json:"category" validate:"required,oneof=veterinary grooming boarding"`
	IsActive    *bool  `json:"is_active" validate:"required"`
}

type CreateServiceOptionRequest struct {
	ServiceID       uuid.UUID       `json:"service_id" validate:"required"`
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gte=5,lte=480"`
}

type UpdateServiceOptionRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gte=5,lte=480"`
	IsActive        *bool           `json:"is_active" validate:"required"`
}

// Response DTOs

type ServiceResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Category    string                  `json:"category"`
	IsActive    bool                    `json:"is_active"`
	Options     []ServiceOptionResponse `json:"options,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

type ServiceOptionResponse struct {
	ID              uuid.UUID       `json:"id"`
	ServiceID       uuid.UUID       `json:"service_id"`
	ServiceName     string          `json:"service_name,omitempty"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
