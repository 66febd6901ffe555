package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// OwnerService implements owner-directory lookups and upserts.
type OwnerService struct {
	owners ports.OwnerRepository
	logger zerolog.Logger
}

func NewOwnerService(owners ports.OwnerRepository, logger zerolog.Logger) *OwnerService {
	return &OwnerService{owners: owners, logger: logger}
}

// Lookup returns the owner registered for a vehicle number.
func (s *OwnerService) Lookup(ctx context.Context, vehicleNumber string) (*domain.Owner, error) {
	return s.owners.FindByPlate(ctx, domain.NormalizePlate(vehicleNumber))
}

// Upsert creates or updates the directory entry for a plate. On update the
// name is always overwritten; phone and model only when the input is
// non-empty. A concurrent insert racing on the unique plate index surfaces as
// domain.ErrOwnerExists.
func (s *OwnerService) Upsert(ctx context.Context, input ports.UpsertOwnerInput) (*domain.Owner, bool, error) {
	plate := domain.NormalizePlate(input.PlateNumber)

	existing, err := s.owners.FindByPlate(ctx, plate)
	if err == nil {
		existing.OwnerName = input.OwnerName
		if input.Phone != "" {
			existing.Phone = input.Phone
		}
		if input.Model != "" {
			existing.Model = input.Model
		}
		existing.UpdatedAt = time.Now().UTC()
		if err := s.owners.Save(ctx, existing); err != nil {
			return nil, false, err
		}
		s.logger.Info().Str("plate", plate).Msg("owner updated")
		return existing, true, nil
	}
	if !errors.Is(err, domain.ErrOwnerNotFound) {
		return nil, false, err
	}

	now := time.Now().UTC()
	owner := &domain.Owner{
		PlateNumber: plate,
		OwnerName:   input.OwnerName,
		Phone:       input.Phone,
		Model:       input.Model,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.owners.Create(ctx, owner)
	if err != nil {
		return nil, false, err
	}
	s.logger.Info().Str("plate", plate).Msg("owner created")
	return created, false, nil
}
