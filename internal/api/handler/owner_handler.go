package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// OwnerHandler handles owner-directory lookups and submissions.
type OwnerHandler struct {
	ownerService ports.OwnerService
}

func NewOwnerHandler(ownerService ports.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// Lookup resolves the owner registered for a vehicle number.
//
// @Summary      Look up an owner by vehicle number
// @Tags         owners
// @Produce      json
// @Param        vehicleNumber  query     string  true  "Vehicle number (raw, will be normalized)"
// @Success      200            {object}  ownerResponse
// @Failure      400            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Router       /api/owners/lookup [get]
func (h *OwnerHandler) Lookup(c echo.Context) error {
	raw := c.QueryParam("vehicleNumber")
	if raw == "" {
		raw = c.QueryParam("plateNumber")
	}
	if raw == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "vehicleNumber query parameter is required"})
	}

	owner, err := h.ownerService.Lookup(c.Request().Context(), raw)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Owner not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, ownerResponse{Owner: owner})
}

// Upsert creates or updates the directory entry for a plate.
//
// @Summary      Create or update an owner
// @Tags         owners
// @Accept       json
// @Produce      json
// @Param        body  body      upsertOwnerRequest  true  "Owner details"
// @Success      200   {object}  ownerResponse  "existing owner updated"
// @Success      201   {object}  ownerResponse  "new owner created"
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/owners [post]
func (h *OwnerHandler) Upsert(c echo.Context) error {
	var req upsertOwnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	owner, updated, err := h.ownerService.Upsert(c.Request().Context(), ports.UpsertOwnerInput{
		PlateNumber: req.PlateNumber,
		OwnerName:   req.OwnerName,
		Phone:       req.Phone,
		Model:       req.Model,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOwnerExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "Owner with this plate already exists"})
		}
		return err
	}

	if updated {
		return c.JSON(http.StatusOK, ownerResponse{Owner: owner, Updated: true})
	}
	return c.JSON(http.StatusCreated, ownerResponse{Owner: owner})
}
