package converter

import (
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.MedicalRecordResponse{
		ID:            record.ID,
		AppointmentID: record.AppointmentID,
		DoctorID:      record.DoctorID,
		DoctorName:    record.Doctor.FullName,
		Diagnosis:     record.Diagnosis,
		NextCheckup:   record.NextCheckup,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		resp := MedicalRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
