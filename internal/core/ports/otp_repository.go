package ports

import (
	"context"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// OtpRepository holds at most one live passcode challenge per plate.
type OtpRepository interface {
	// Upsert stores a challenge for its plate, replacing any existing one.
	Upsert(ctx context.Context, challenge *domain.OtpChallenge) error
	// FindByPlate returns the current challenge, or domain.ErrNoChallenge.
	FindByPlate(ctx context.Context, plate string) (*domain.OtpChallenge, error)
	// IncrementAttempts bumps the failed-attempt counter on the live
	// challenge. The challenge stays valid regardless of the count.
	IncrementAttempts(ctx context.Context, plate string) error
	// Delete consumes the challenge for a plate. Deleting an absent
	// challenge is not an error.
	Delete(ctx context.Context, plate string) error
}
