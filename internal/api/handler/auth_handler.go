package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// AuthHandler handles OTP-based owner authentication and admin login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RequestOtp issues a passcode for the vehicle's registered owner.
//
// @Summary      Request an OTP for a vehicle
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      requestOtpRequest  true  "Vehicle number"
// @Success      200   {object}  requestOtpResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/request-otp [post]
func (h *AuthHandler) RequestOtp(c echo.Context) error {
	var req requestOtpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.authService.RequestOtp(c.Request().Context(), req.VehicleNumber); err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			// A plate with no owner and an owner with no phone produce the
			// same response on purpose.
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Owner not found for this vehicle"})
		}
		return err
	}

	// Success is reported once the challenge is stored; SMS delivery is
	// best-effort and not awaited.
	return c.JSON(http.StatusOK, requestOtpResponse{
		OK:      true,
		Message: "OTP sent if owner phone is registered",
	})
}

// VerifyOtp checks a submitted passcode and returns the plate's towing records.
//
// @Summary      Verify an OTP and fetch towing records
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOtpRequest  true  "Vehicle number and OTP"
// @Success      200   {object}  verifyOtpResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req verifyOtpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	records, err := h.authService.VerifyOtp(c.Request().Context(), req.VehicleNumber, req.Otp)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoChallenge):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "No OTP requested for this vehicle"})
		case errors.Is(err, domain.ErrOtpExpired):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "OTP expired"})
		case errors.Is(err, domain.ErrOtpInvalid):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid OTP"})
		}
		return err
	}

	return c.JSON(http.StatusOK, verifyOtpResponse{OK: true, Vehicles: records})
}

// AdminLogin performs a stateless operator credential check.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Credentials"
// @Success      200   {object}  adminLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/admin-login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	admin, err := h.authService.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, adminLoginResponse{OK: true, Email: admin.Email, Role: admin.Role})
}
