package ports

import (
	"context"
	"time"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// CoordinatesInput is an optional lat/lon pair supplied by the admin form.
type CoordinatesInput struct {
	Lat float64
	Lon float64
}

// OwnerInput is a caller-supplied owner snapshot on record creation.
type OwnerInput struct {
	Name  string
	Phone string
	Model string
}

// CreateRecordInput carries all data for a new towing record. PlateNumber may
// be raw; the service normalizes it.
type CreateRecordInput struct {
	PlateNumber     string
	TowedFrom       string
	TowedTo         string
	Fine            float64
	Reason          string
	Owner           *OwnerInput
	TowedFromCoords *CoordinatesInput
	TowedToCoords   *CoordinatesInput
}

// ListRecordsResult is one page of towing records plus paging metadata.
type ListRecordsResult struct {
	Records []*domain.TowingRecord
	Total   int64
	Page    int
	Limit   int
}

// PaymentStatusResult is the payment view of a single towing record.
type PaymentStatusResult struct {
	PaymentStatus domain.PaymentStatus
	PaymentID     string
	PaidAt        *time.Time
	Fine          float64
}

// TowingService defines the admin-facing towing record use cases.
type TowingService interface {
	// CreateRecord persists a towing event, resolves or stores the owner
	// snapshot, and fires a towing-notice SMS when a phone is available.
	CreateRecord(ctx context.Context, input CreateRecordInput) (*domain.TowingRecord, error)
	// ListRecords returns records newest first. Limit is capped at 100 and
	// defaults to 10; page defaults to 1.
	ListRecords(ctx context.Context, page, limit int) (*ListRecordsResult, error)
	// UpdatePaymentStatus applies a payment transition; paidAt is stamped on
	// entering paid and left untouched otherwise.
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paymentID string) (*domain.TowingRecord, error)
	// GetPaymentStatus returns the payment view for one record.
	GetPaymentStatus(ctx context.Context, id string) (*PaymentStatusResult, error)
}
