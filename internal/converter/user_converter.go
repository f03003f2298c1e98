package converter

import (
	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Role name resolves from the preloaded Role when available, falling back to
// the well-known role IDs.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	roleName := user.Role.RoleName
	if roleName == "" {
		roleName = roleNameFromID(user.RoleID)
	}

	return &dto.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           roleName,
		PhoneNumber:    user.PhoneNumber,
		Specialization: user.Specialization,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		resp := UserToResponse(&user)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

func roleNameFromID(roleID int) string {
	switch roleID {
	case entity.RoleIDAdmin:
		return entity.RoleAdmin
	case entity.RoleIDDoctor:
		return entity.RoleDoctor
	case entity.RoleIDStaff:
		return entity.RoleStaff
	case entity.RoleIDCustomer:
		return entity.RoleCustomer
	default:
		return ""
	}
}
