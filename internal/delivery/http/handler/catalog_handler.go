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

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

// GetCatalog returns the public service catalog
// @Summary Browse the service catalog
// @Description List active services with their priced options
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogUsecase.GetCatalog(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get catalog")
		return
	}

	response.Success(w, http.StatusOK, "Catalog retrieved successfully", catalog)
}

// CreateService handles service creation
// @Summary Create a service
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/services [post]
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.catalogUsecase.CreateService(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNameExists:
			response.Conflict(w, "Service name already exists")
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

// GetService returns a single service with its options
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	service, err := h.catalogUsecase.GetService(r.Context(), serviceID)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

// GetAllServices returns every service including inactive ones
func (h *CatalogHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.GetAllServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// UpdateService handles service updates
// @Summary Update a service
// @Tags Catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/services/{id} [put]
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.catalogUsecase.UpdateService(r.Context(), serviceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrServiceNameExists:
			response.Conflict(w, "Service name already exists")
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

// DeleteService handles service removal
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	if err := h.catalogUsecase.DeleteService(r.Context(), serviceID); err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

// CreateServiceOption adds a priced option to a service
func (h *CatalogHandler) CreateServiceOption(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	option, err := h.catalogUsecase.CreateServiceOption(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to create service option")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service option created successfully", option)
}

// UpdateServiceOption updates a priced option
func (h *CatalogHandler) UpdateServiceOption(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	optionID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service option ID", nil)
		return
	}

	var req dto.UpdateServiceOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	option, err := h.catalogUsecase.UpdateServiceOption(r.Context(), optionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceOptionNotFound:
			response.NotFound(w, "Service option not found")
		default:
			response.InternalServerError(w, "Failed to update service option")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service option updated successfully", option)
}

// DeleteServiceOption removes a priced option
func (h *CatalogHandler) DeleteServiceOption(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	optionID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service option ID", nil)
		return
	}

	if err := h.catalogUsecase.DeleteServiceOption(r.Context(), optionID); err != nil {
		switch err {
		case usecase.ErrServiceOptionNotFound:
			response.NotFound(w, "Service option not found")
		default:
			response.InternalServerError(w, "Failed to delete service option")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service option deleted successfully", nil)
}
