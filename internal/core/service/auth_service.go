package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/towingbuddy/towtrack-api/internal/api/metrics"
	"github.com/towingbuddy/towtrack-api/internal/core/domain"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

const defaultOtpTTL = 7 * time.Minute

// otpSmsTemplate is the compact OTP message. Kept short so it fits a single
// SMS segment even on trial gateway accounts.
const otpSmsTemplate = "Your OTP for TowingBuddy is %s. It will expire in %d minutes."

// AuthService implements the owner OTP flow and the stateless admin login.
type AuthService struct {
	owners     ports.OwnerRepository
	otps       ports.OtpRepository
	records    ports.TowingRepository
	admins     ports.AdminRepository
	dispatcher ports.NotificationDispatcher
	otpTTL     time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	owners ports.OwnerRepository,
	otps ports.OtpRepository,
	records ports.TowingRepository,
	admins ports.AdminRepository,
	dispatcher ports.NotificationDispatcher,
	otpTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if otpTTL <= 0 {
		otpTTL = defaultOtpTTL
	}
	return &AuthService{
		owners:     owners,
		otps:       otps,
		records:    records,
		admins:     admins,
		dispatcher: dispatcher,
		otpTTL:     otpTTL,
		logger:     logger,
	}
}

// RequestOtp issues a six-digit challenge for the plate and queues the code
// for SMS delivery. The response does not depend on delivery: once the
// challenge is stored the call succeeds.
func (s *AuthService) RequestOtp(ctx context.Context, vehicleNumber string) error {
	plate := domain.NormalizePlate(vehicleNumber)

	owner, err := s.owners.FindByPlate(ctx, plate)
	if err != nil {
		return err
	}
	// An owner without a phone cannot receive a code. The caller sees the
	// same not-found response either way, so unregistered plates are not
	// distinguishable from phone-less ones.
	if owner.Phone == "" {
		return domain.ErrOwnerNotFound
	}

	code, err := generateOtpCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash otp: %w", err)
	}

	now := time.Now().UTC()
	challenge := &domain.OtpChallenge{
		PlateNumber: plate,
		OtpHash:     string(hash),
		ExpiresAt:   now.Add(s.otpTTL),
		Attempts:    0,
		CreatedAt:   now,
	}
	if err := s.otps.Upsert(ctx, challenge); err != nil {
		return fmt.Errorf("store otp challenge: %w", err)
	}

	metrics.OtpIssuedTotal.Inc()

	message := fmt.Sprintf(otpSmsTemplate, code, int(s.otpTTL.Minutes()))
	s.dispatcher.Enqueue(ports.Notification{
		To:       owner.Phone,
		Vars:     ports.MessageVars{OwnerName: owner.OwnerName, VehicleNumber: plate},
		Override: message,
	})

	s.logger.Info().Str("plate", plate).Msg("otp challenge issued")
	return nil
}

// VerifyOtp validates a submitted code. A correct code consumes the challenge
// and returns the plate's towing records newest first; a wrong code counts an
// attempt but keeps the challenge live until expiry.
func (s *AuthService) VerifyOtp(ctx context.Context, vehicleNumber, code string) ([]*domain.TowingRecord, error) {
	plate := domain.NormalizePlate(vehicleNumber)

	challenge, err := s.otps.FindByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, domain.ErrNoChallenge) {
			metrics.OtpVerifyTotal.WithLabelValues("no_challenge").Inc()
		}
		return nil, err
	}

	if challenge.Expired(time.Now().UTC()) {
		if delErr := s.otps.Delete(ctx, plate); delErr != nil {
			s.logger.Warn().Err(delErr).Str("plate", plate).Msg("failed to delete expired otp challenge")
		}
		metrics.OtpVerifyTotal.WithLabelValues("expired").Inc()
		return nil, domain.ErrOtpExpired
	}

	if bcrypt.CompareHashAndPassword([]byte(challenge.OtpHash), []byte(code)) != nil {
		// Attempts are tracked but never enforced as a lockout.
		if incErr := s.otps.IncrementAttempts(ctx, plate); incErr != nil {
			s.logger.Warn().Err(incErr).Str("plate", plate).Msg("failed to record otp attempt")
		}
		metrics.OtpVerifyTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrOtpInvalid
	}

	// Consume before returning records: a code is single-use.
	if err := s.otps.Delete(ctx, plate); err != nil {
		return nil, fmt.Errorf("consume otp challenge: %w", err)
	}

	records, err := s.records.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("load towing records: %w", err)
	}

	metrics.OtpVerifyTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("plate", plate).Int("records", len(records)).Msg("otp verified")
	return records, nil
}

// AdminLogin performs a stateless credential check. Unknown emails and wrong
// passwords produce the same error so accounts cannot be enumerated.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*domain.Admin, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return admin, nil
}

// generateOtpCode returns a uniformly random six-digit code in
// [100000, 999999].
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
