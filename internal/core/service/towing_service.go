package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/towingbuddy/towtrack-api/internal/api/metrics"
	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// TowingService implements the admin-facing towing record use cases.
type TowingService struct {
	records    ports.TowingRepository
	owners     ports.OwnerRepository
	dispatcher ports.NotificationDispatcher
	logger     zerolog.Logger
}

func NewTowingService(
	records ports.TowingRepository,
	owners ports.OwnerRepository,
	dispatcher ports.NotificationDispatcher,
	logger zerolog.Logger,
) *TowingService {
	return &TowingService{
		records:    records,
		owners:     owners,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CreateRecord persists a towing event and fires the towing-notice SMS when an
// owner phone is known. The owner snapshot comes from the payload when
// supplied (and is written back to the directory), otherwise from a directory
// lookup. Directory failures never abort the record write.
func (s *TowingService) CreateRecord(ctx context.Context, input ports.CreateRecordInput) (*domain.TowingRecord, error) {
	plate := domain.NormalizePlate(input.PlateNumber)

	record := &domain.TowingRecord{
		PlateNumber:   plate,
		TowedFrom:     input.TowedFrom,
		TowedTo:       input.TowedTo,
		Fine:          input.Fine,
		Reason:        input.Reason,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     time.Now().UTC(),
	}
	if record.Fine < 0 {
		record.Fine = 0
	}
	if input.TowedFromCoords != nil {
		record.TowedFromCoords = &domain.Coordinates{Lat: input.TowedFromCoords.Lat, Lon: input.TowedFromCoords.Lon}
	}
	if input.TowedToCoords != nil {
		record.TowedToCoords = &domain.Coordinates{Lat: input.TowedToCoords.Lat, Lon: input.TowedToCoords.Lon}
	}

	if input.Owner != nil && input.Owner.Name != "" {
		record.Owner = &domain.OwnerSnapshot{
			Name:  input.Owner.Name,
			Phone: input.Owner.Phone,
			Model: input.Owner.Model,
		}
		// Keep the directory current for future lookups; a failure here is
		// logged and swallowed, the towing record still gets written.
		if err := s.owners.UpsertSnapshot(ctx, plate, input.Owner.Name, input.Owner.Phone, input.Owner.Model); err != nil {
			s.logger.Error().Err(err).Str("plate", plate).Msg("owner upsert failed during record creation")
		}
	} else {
		owner, err := s.owners.FindByPlate(ctx, plate)
		switch {
		case err == nil:
			record.Owner = &domain.OwnerSnapshot{
				Name:  owner.OwnerName,
				Phone: owner.Phone,
				Model: owner.Model,
			}
		case errors.Is(err, domain.ErrOwnerNotFound):
			// No owner on file; the record is created without a snapshot.
		default:
			s.logger.Error().Err(err).Str("plate", plate).Msg("owner lookup failed during record creation")
		}
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		s.logger.Error().Err(err).Str("plate", plate).Msg("failed to create towing record")
		return nil, err
	}

	metrics.RecordsCreatedTotal.Inc()

	if created.Owner != nil && created.Owner.Phone != "" {
		s.dispatcher.Enqueue(ports.Notification{
			To: created.Owner.Phone,
			Vars: ports.MessageVars{
				OwnerName:     created.Owner.Name,
				VehicleNumber: plate,
				Model:         created.Owner.Model,
				TowedFrom:     created.TowedFrom,
				TowedTo:       created.TowedTo,
				Fine:          created.Fine,
				Reason:        created.Reason,
			},
		})
	}

	s.logger.Info().Str("plate", plate).Str("id", created.ID).Msg("towing record created")
	return created, nil
}

// ListRecords returns one page of towing records, newest first.
func (s *TowingService) ListRecords(ctx context.Context, page, limit int) (*ports.ListRecordsResult, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if page < 1 {
		page = 1
	}

	records, total, err := s.records.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListRecordsResult{
		Records: records,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// UpdatePaymentStatus applies a payment transition. Entering paid stamps
// paidAt; leaving paid deliberately does not clear it.
func (s *TowingService) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paymentID string) (*domain.TowingRecord, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidPaymentStatus
	}

	update := ports.PaymentUpdate{Status: status, PaymentID: paymentID}
	if status == domain.PaymentPaid {
		now := time.Now().UTC()
		update.PaidAt = &now
	}

	record, err := s.records.UpdatePayment(ctx, id, update)
	if err != nil {
		return nil, err
	}

	metrics.PaymentUpdatesTotal.WithLabelValues(string(status)).Inc()
	s.logger.Info().Str("id", id).Str("status", string(status)).Msg("payment status updated")
	return record, nil
}

// GetPaymentStatus returns the payment view for a single record.
func (s *TowingService) GetPaymentStatus(ctx context.Context, id string) (*ports.PaymentStatusResult, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.PaymentStatusResult{
		PaymentStatus: record.PaymentStatus,
		PaymentID:     record.PaymentID,
		PaidAt:        record.PaidAt,
		Fine:          record.Fine,
	}, nil
}
