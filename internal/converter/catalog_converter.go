package converter

import (
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"
)

// ServiceToResponse converts a Service entity to ServiceResponse DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	response := &dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Category:    string(service.Category),
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
	if service.IsActive != nil {
		response.IsActive = *service.IsActive
	}

	if len(service.Options) > 0 {
		response.Options = ServiceOptionsToResponses(service.Options)
	}

	return response
}

// ServicesToResponses converts a slice of Service entities to ServiceResponse DTOs
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		resp := ServiceToResponse(&service)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// ServiceOptionToResponse converts a ServiceOption entity to ServiceOptionResponse DTO
func ServiceOptionToResponse(option *entity.ServiceOption) *dto.ServiceOptionResponse {
	if option == nil {
		return nil
	}

	response := &dto.ServiceOptionResponse{
		ID:              option.ID,
		ServiceID:       option.ServiceID,
		ServiceName:     option.Service.Name,
		Name:            option.Name,
		Price:           option.Price,
		DurationMinutes: option.DurationMinutes,
		CreatedAt:       option.CreatedAt,
		UpdatedAt:       option.UpdatedAt,
	}
	if option.IsActive != nil {
		response.IsActive = *option.IsActive
	}

	return response
}

// ServiceOptionsToResponses converts a slice of ServiceOption entities to DTOs
func ServiceOptionsToResponses(options []entity.ServiceOption) []dto.ServiceOptionResponse {
	responses := make([]dto.ServiceOptionResponse, len(options))
	for i, option := range options {
		resp := ServiceOptionToResponse(&option)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
