package ports

import (
	"context"
	"time"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// PaymentUpdate carries the fields of a payment-status transition.
// PaidAt is only set when transitioning to paid; it is never cleared when
// moving away from paid.
type PaymentUpdate struct {
	Status    domain.PaymentStatus
	PaymentID string     // optional; empty leaves the stored value untouched
	PaidAt    *time.Time // non-nil only on transition to paid
}

// TowingRepository defines persistence operations for towing records.
type TowingRepository interface {
	Create(ctx context.Context, record *domain.TowingRecord) (*domain.TowingRecord, error)
	// FindByPlate returns all records for a normalized plate, newest first.
	FindByPlate(ctx context.Context, plate string) ([]*domain.TowingRecord, error)
	FindByID(ctx context.Context, id string) (*domain.TowingRecord, error)
	// List returns one page of records, newest first, plus the total count.
	List(ctx context.Context, page, limit int) ([]*domain.TowingRecord, int64, error)
	// UpdatePayment applies a payment transition and returns the updated
	// record, or domain.ErrRecordNotFound for an unknown id.
	UpdatePayment(ctx context.Context, id string, update PaymentUpdate) (*domain.TowingRecord, error)
}
