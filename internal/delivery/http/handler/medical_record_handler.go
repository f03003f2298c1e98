package handler

import (
	"encoding/json"
	"net/http"

	"petclinic-api/internal/delivery/dto"
	"petclinic-api/internal/usecase"
	"petclinic-api/pkg/response"
	"petclinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// Update lets the assigned doctor write diagnosis and next checkup
// @Summary Update a medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Medical Record ID"
// @Param request body dto.UpdateMedicalRecordRequest true "Update Medical Record Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctor/records/{id} [put]
func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid medical record ID", nil)
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.UpdateRecord(r.Context(), recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrRecordNotYours:
			response.Forbidden(w, "Medical record belongs to another doctor")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid next checkup date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

// GetMine lists records written for the calling doctor
func (h *MedicalRecordHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.GetMyRecords(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}

// GetByPet returns a pet's medical history
// @Summary Get a pet's medical history
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pets/{id}/records [get]
func (h *MedicalRecordHandler) GetByPet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	petID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	records, err := h.recordUsecase.GetRecordsByPet(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetNotOwned:
			response.Forbidden(w, "Pet belongs to another customer")
		default:
			response.InternalServerError(w, "Failed to get medical records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
