package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type SettlePaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=cash card transfer"`
}

// Response DTOs

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	AppointmentID uuid.UUID       `json:"appointment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method,omitempty"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
