package ports

import (
	"context"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// OwnerRepository defines persistence operations for the owner directory.
// All plate arguments are expected in normalized form.
type OwnerRepository interface {
	// FindByPlate returns the owner registered for a plate, or
	// domain.ErrOwnerNotFound.
	FindByPlate(ctx context.Context, plate string) (*domain.Owner, error)
	// Create inserts a new owner. A duplicate-key race on the unique plate
	// index is reported as domain.ErrOwnerExists.
	Create(ctx context.Context, owner *domain.Owner) (*domain.Owner, error)
	// Save persists changes to an existing owner.
	Save(ctx context.Context, owner *domain.Owner) error
	// UpsertSnapshot writes name/phone/model for a plate in a single atomic
	// upsert. Used by the vehicle-creation path where there is no prior read.
	UpsertSnapshot(ctx context.Context, plate, name, phone, model string) error
}
