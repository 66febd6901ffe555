package domain

import (
	"errors"
	"time"
)

// PaymentStatus is the payment lifecycle state of a towing fine.
type PaymentStatus string

const (
	PaymentUnpaid     PaymentStatus = "unpaid"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPaid       PaymentStatus = "paid"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentProcessing, PaymentPaid:
		return true
	}
	return false
}

var ErrRecordNotFound = errors.New("towing record not found")
var ErrInvalidPaymentStatus = errors.New("invalid payment status")

// Coordinates is a geographic point attached to a pickup or depot location.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
}

// OwnerSnapshot is the owner contact captured on a towing record at creation
// time. It is a copy, not a reference into the owner directory.
type OwnerSnapshot struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Model string `json:"model,omitempty" bson:"model,omitempty"`
}

// TowingRecord is a single towing event. Multiple records may exist for the
// same plate; records are never deleted in the normal flow.
type TowingRecord struct {
	ID              string         `json:"id,omitempty" bson:"_id,omitempty"`
	PlateNumber     string         `json:"plateNumber" bson:"plate_number"`
	TowedFrom       string         `json:"towedFrom" bson:"towed_from"`
	TowedTo         string         `json:"towedTo" bson:"towed_to"`
	Fine            float64        `json:"fine" bson:"fine"`
	Reason          string         `json:"reason" bson:"reason"`
	Owner           *OwnerSnapshot `json:"owner,omitempty" bson:"owner,omitempty"`
	TowedFromCoords *Coordinates   `json:"towedFromCoords,omitempty" bson:"towed_from_coords,omitempty"`
	TowedToCoords   *Coordinates   `json:"towedToCoords,omitempty" bson:"towed_to_coords,omitempty"`
	PaymentStatus   PaymentStatus  `json:"paymentStatus" bson:"payment_status"`
	PaymentID       string         `json:"paymentId,omitempty" bson:"payment_id,omitempty"`
	PaidAt          *time.Time     `json:"paidAt,omitempty" bson:"paid_at,omitempty"`
	CreatedAt       time.Time      `json:"createdAt" bson:"created_at"`
}
