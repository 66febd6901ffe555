package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Handlers that need flow-specific wording (the OTP endpoints) map their
// errors locally; everything else can return domain errors as-is.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrOwnerNotFound):
		return http.StatusNotFound, "Owner not found"
	case errors.Is(err, domain.ErrOwnerExists):
		return http.StatusConflict, "Owner with this plate already exists"
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "Vehicle record not found"
	case errors.Is(err, domain.ErrInvalidPaymentStatus):
		return http.StatusBadRequest, "Invalid payment status"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrNoChallenge):
		return http.StatusBadRequest, "No OTP requested for this vehicle"
	case errors.Is(err, domain.ErrOtpExpired):
		return http.StatusBadRequest, "OTP expired"
	case errors.Is(err, domain.ErrOtpInvalid):
		return http.StatusBadRequest, "Invalid OTP"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
