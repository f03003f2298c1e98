package converter

import (
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"
)

// PetToResponse converts a Pet entity to PetResponse DTO
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	return &dto.PetResponse{
		ID:          pet.ID,
		OwnerID:     pet.OwnerID,
		OwnerName:   pet.Owner.FullName,
		Name:        pet.Name,
		Species:     pet.Species,
		Breed:       pet.Breed,
		Gender:      pet.Gender,
		DateOfBirth: pet.DateOfBirth,
		Notes:       pet.Notes,
		CreatedAt:   pet.CreatedAt,
		UpdatedAt:   pet.UpdatedAt,
	}
}

// PetsToResponses converts a slice of Pet entities to PetResponse DTOs
func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i, pet := range pets {
		resp := PetToResponse(&pet)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
