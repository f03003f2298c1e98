package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePetRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Species     string `json:"species" validate:"required,min=2,max=50"`
	Breed       string `json:"breed" validate:"omitempty,max=100"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes" validate:"omitempty"`
}

type UpdatePetRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Species     string `json:"species" validate:"required,min=2,max=50"`
	Breed       string `json:"breed" validate:"omitempty,max=100"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type PetResponse struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	OwnerName   string     `json:"owner_name,omitempty"`
	Name        string     `json:"name"`
	Species     string     `json:"species"`
	Breed       string     `json:"breed,omitempty"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
