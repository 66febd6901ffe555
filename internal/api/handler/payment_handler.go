package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// PaymentHandler handles payment-status reads and transitions on towing records.
type PaymentHandler struct {
	towingService ports.TowingService
}

func NewPaymentHandler(towingService ports.TowingService) *PaymentHandler {
	return &PaymentHandler{towingService: towingService}
}

// UpdateStatus applies a payment transition to a towing record.
//
// @Summary      Update payment status
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Towing record id"
// @Param        body  body      updatePaymentRequest  true  "New payment status"
// @Success      200   {object}  updatePaymentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/payments/{id}/status [put]
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid payment status"})
	}

	record, err := h.towingService.UpdatePaymentStatus(
		c.Request().Context(),
		c.Param("id"),
		domain.PaymentStatus(req.PaymentStatus),
		req.PaymentID,
	)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Vehicle record not found"})
		}
		if errors.Is(err, domain.ErrInvalidPaymentStatus) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid payment status"})
		}
		return err
	}

	return c.JSON(http.StatusOK, updatePaymentResponse{
		Success: true,
		Vehicle: record,
		Message: fmt.Sprintf("Payment status updated to %s", req.PaymentStatus),
	})
}

// GetStatus returns the payment view of one towing record.
//
// @Summary      Get payment status
// @Tags         payments
// @Produce      json
// @Param        id  path      string  true  "Towing record id"
// @Success      200 {object}  paymentStatusResponse
// @Failure      404 {object}  errorResponse
// @Router       /api/payments/{id}/status [get]
func (h *PaymentHandler) GetStatus(c echo.Context) error {
	status, err := h.towingService.GetPaymentStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Vehicle record not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, paymentStatusResponse{
		Success:       true,
		PaymentStatus: string(status.PaymentStatus),
		PaymentID:     status.PaymentID,
		PaidAt:        status.PaidAt,
		Fine:          status.Fine,
	})
}
