package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/usecase"
	"petclinic-api/pkg/response"
	"petclinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

// Create handles pet registration
// @Summary Register a new pet
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePetRequest true "Create Pet Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /pets [post]
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.CreatePet(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create pet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pet created successfully", pet)
}

// GetMine lists the caller's pets
// @Summary List my pets
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /pets [get]
func (h *PetHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petUsecase.GetMyPets(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

// Get returns a single pet
// @Summary Get pet by ID
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id} [get]
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	petID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	pet, err := h.petUsecase.GetPet(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetNotOwned:
			response.Forbidden(w, "Pet belongs to another customer")
		default:
			response.InternalServerError(w, "Failed to get pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet retrieved successfully", pet)
}

// GetAll lists all pets for clinic staff
// @Summary List all pets
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /staff/pets [get]
func (h *PetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pets, total, err := h.petUsecase.GetAllPets(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get pets")
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	response.SuccessWithMeta(w, http.StatusOK, "Pets retrieved successfully", pets, meta)
}

// Update handles pet profile updates
// @Summary Update a pet
// @Tags Pets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Pet ID"
// @Param request body dto.UpdatePetRequest true "Update Pet Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id} [put]
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	petID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	var req dto.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.UpdatePet(r.Context(), petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetNotOwned:
			response.Forbidden(w, "Pet belongs to another customer")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date of birth, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet updated successfully", pet)
}

// Delete removes a pet that has no open appointments
// @Summary Delete a pet
// @Tags Pets
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	petID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	if err := h.petUsecase.DeletePet(r.Context(), petID); err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetNotOwned:
			response.Forbidden(w, "Pet belongs to another customer")
		case usecase.ErrPetHasOpenAppointments:
			response.Conflict(w, "Pet has open appointments")
		default:
			response.InternalServerError(w, "Failed to delete pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet deleted successfully", nil)
}
