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

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// Settle handles payment settlement
// @Summary Settle a payment
// @Description Mark a pending payment as completed
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.SettlePaymentRequest true "Settle Payment Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /staff/payments/{id}/settle [post]
func (h *PaymentHandler) Settle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	var req dto.SettlePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.SettlePayment(r.Context(), paymentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		case usecase.ErrPaymentNotPending:
			response.Conflict(w, "Payment is not pending")
		default:
			response.InternalServerError(w, "Failed to settle payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment settled successfully", payment)
}

// Get returns a single payment
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment ID", nil)
		return
	}

	payment, err := h.paymentUsecase.GetPayment(r.Context(), paymentID)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		default:
			response.InternalServerError(w, "Failed to get payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

// GetAll lists payments with an optional status filter
// @Summary List payments
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /staff/payments [get]
func (h *PaymentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	payments, total, err := h.paymentUsecase.GetAllPayments(r.Context(), query.Get("status"), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get payments")
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

	response.SuccessWithMeta(w, http.StatusOK, "Payments retrieved successfully", payments, meta)
}
