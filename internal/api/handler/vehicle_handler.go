package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// VehicleHandler handles towing record creation and listing.
type VehicleHandler struct {
	towingService ports.TowingService
}

func NewVehicleHandler(towingService ports.TowingService) *VehicleHandler {
	return &VehicleHandler{towingService: towingService}
}

// Create records a towing event.
//
// @Summary      Record a towing event
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body      createVehicleRequest  true  "Towing details"
// @Success      201   {object}  createVehicleResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	plate := req.PlateNumber
	if plate == "" {
		plate = req.VehicleNumber
	}
	if plate == "" || req.TowedFrom == "" || req.TowedTo == "" || req.Reason == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "plateNumber/vehicleNumber, towedFrom, towedTo and reason are required",
		})
	}

	input := ports.CreateRecordInput{
		PlateNumber: plate,
		TowedFrom:   req.TowedFrom,
		TowedTo:     req.TowedTo,
		Fine:        parseFine(req.Fine),
		Reason:      req.Reason,
	}
	if req.Owner != nil && req.Owner.Name != "" {
		input.Owner = &ports.OwnerInput{
			Name:  req.Owner.Name,
			Phone: req.Owner.Phone,
			Model: req.Owner.Model,
		}
	}
	if coords := parseCoords(req.TowedFromCoords); coords != nil {
		input.TowedFromCoords = coords
	}
	if coords := parseCoords(req.TowedToCoords); coords != nil {
		input.TowedToCoords = coords
	}

	record, err := h.towingService.CreateRecord(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createVehicleResponse{Message: "Vehicle added", Vehicle: record})
}

// List returns one page of towing records.
//
// @Summary      List towing records
// @Tags         vehicles
// @Produce      json
// @Param        limit  query     int  false  "Page size (max 100, default 10)"
// @Param        page   query     int  false  "Page number (1-based)"
// @Success      200    {object}  listVehiclesResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/vehicles [get]
func (h *VehicleHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.towingService.ListRecords(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listVehiclesResponse{
		Vehicles: result.Records,
		Total:    result.Total,
		Page:     result.Page,
		Limit:    result.Limit,
	})
}

// parseFine tolerates absent, numeric, and string fines; anything that does
// not parse becomes 0.
func parseFine(v any) float64 {
	switch f := v.(type) {
	case float64:
		return f
	case string:
		parsed, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// parseCoords returns the pair only when both values are present.
func parseCoords(req *coordinatesRequest) *ports.CoordinatesInput {
	if req == nil || req.Lat == nil || req.Lon == nil {
		return nil
	}
	return &ports.CoordinatesInput{Lat: *req.Lat, Lon: *req.Lon}
}
