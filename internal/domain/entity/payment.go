package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusVoid      PaymentStatus = "void"
)

// Payment represents the bill attached to an appointment. Created pending
// alongside the booking, settled by staff, voided on cancellation.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method        string          `gorm:"type:varchar(30)" json:"method,omitempty"`
	Status        PaymentStatus   `gorm:"type:payment_status;not null;default:'pending';index" json:"status"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsPending checks if the payment can still be settled
func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}
