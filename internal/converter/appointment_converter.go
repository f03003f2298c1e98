package converter

import (
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Nested pet, option, record and payment come along when preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		CustomerID:  appointment.CustomerID,
		ScheduledAt: appointment.ScheduledAt,
		Symptoms:    appointment.Symptoms,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	if appointment.Pet.ID != uuid.Nil {
		response.Pet = PetToResponse(&appointment.Pet)
	}
	if appointment.ServiceOption.ID != uuid.Nil {
		response.ServiceOption = ServiceOptionToResponse(&appointment.ServiceOption)
	}
	if appointment.MedicalRecord != nil {
		response.MedicalRecord = MedicalRecordToResponse(appointment.MedicalRecord)
	}
	if appointment.Payment != nil {
		response.Payment = PaymentToResponse(appointment.Payment)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
