package handler

import (
	"time"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type requestOtpRequest struct {
	VehicleNumber string `json:"vehicleNumber" validate:"required"`
}

type requestOtpResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type verifyOtpRequest struct {
	VehicleNumber string `json:"vehicleNumber" validate:"required"`
	Otp           string `json:"otp"           validate:"required"`
}

type verifyOtpResponse struct {
	OK       bool                   `json:"ok"`
	Vehicles []*domain.TowingRecord `json:"vehicles"`
}

type adminLoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminLoginResponse struct {
	OK    bool   `json:"ok"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// --- Owners ---

type upsertOwnerRequest struct {
	PlateNumber string `json:"plateNumber" validate:"required"`
	OwnerName   string `json:"ownerName"   validate:"required"`
	Phone       string `json:"phone"`
	Model       string `json:"model"`
}

type ownerResponse struct {
	Owner   *domain.Owner `json:"owner"`
	Updated bool          `json:"updated,omitempty"`
}

// --- Vehicles ---

// coordinatesRequest accepts loosely-typed lat/lon from the admin form; the
// handler drops the pair unless both parse as numbers.
type coordinatesRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type ownerSnapshotRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Model string `json:"model"`
}

// createVehicleRequest accepts either plateNumber or vehicleNumber for the
// plate. Fine is a raw JSON value so that a missing or non-numeric fine
// defaults to 0 instead of failing the request.
type createVehicleRequest struct {
	PlateNumber     string                `json:"plateNumber"`
	VehicleNumber   string                `json:"vehicleNumber"`
	TowedFrom       string                `json:"towedFrom"`
	TowedTo         string                `json:"towedTo"`
	Fine            any                   `json:"fine"`
	Reason          string                `json:"reason"`
	Owner           *ownerSnapshotRequest `json:"owner"`
	TowedFromCoords *coordinatesRequest   `json:"towedFromCoords"`
	TowedToCoords   *coordinatesRequest   `json:"towedToCoords"`
}

type createVehicleResponse struct {
	Message string               `json:"message"`
	Vehicle *domain.TowingRecord `json:"vehicle"`
}

type listVehiclesResponse struct {
	Vehicles []*domain.TowingRecord `json:"vehicles"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
}

// --- Payments ---

type updatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=unpaid paid processing"`
	PaymentID     string `json:"paymentId"`
}

type updatePaymentResponse struct {
	Success bool                 `json:"success"`
	Vehicle *domain.TowingRecord `json:"vehicle"`
	Message string               `json:"message"`
}

type paymentStatusResponse struct {
	Success       bool       `json:"success"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentID     string     `json:"paymentId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	Fine          float64    `json:"fine"`
}
