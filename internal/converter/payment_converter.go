package converter

import (
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		AppointmentID: payment.AppointmentID,
		Amount:        payment.Amount,
		Method:        payment.Method,
		Status:        string(payment.Status),
		PaidAt:        payment.PaidAt,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to PaymentResponse DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		resp := PaymentToResponse(&payment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
