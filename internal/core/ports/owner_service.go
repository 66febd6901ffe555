package ports

import (
	"context"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// UpsertOwnerInput carries a create-or-update submission for the directory.
type UpsertOwnerInput struct {
	PlateNumber string
	OwnerName   string
	Phone       string
	Model       string
}

// OwnerService defines owner-directory use cases.
type OwnerService interface {
	// Lookup normalizes the plate and returns the registered owner, or
	// domain.ErrOwnerNotFound.
	Lookup(ctx context.Context, vehicleNumber string) (*domain.Owner, error)
	// Upsert creates an owner or updates the existing one. On update,
	// phone and model are only overwritten when the input is non-empty.
	// The updated flag reports whether an existing owner was modified.
	Upsert(ctx context.Context, input UpsertOwnerInput) (owner *domain.Owner, updated bool, err error)
}
