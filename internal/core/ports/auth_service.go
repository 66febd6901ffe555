package ports

import (
	"context"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// AuthService covers both owner OTP authentication and operator login.
type AuthService interface {
	// RequestOtp issues a fresh challenge for the vehicle's plate and
	// dispatches the code to the registered phone. Returns
	// domain.ErrOwnerNotFound when no owner (or no phone) is on file.
	// SMS delivery is fire-and-forget: success here means the challenge
	// was stored, not that the message arrived.
	RequestOtp(ctx context.Context, vehicleNumber string) error
	// VerifyOtp checks a submitted code against the live challenge. On
	// success the challenge is consumed and the plate's towing records are
	// returned newest first. Failures: domain.ErrNoChallenge,
	// domain.ErrOtpExpired (challenge deleted), domain.ErrOtpInvalid
	// (attempt counted, challenge kept).
	VerifyOtp(ctx context.Context, vehicleNumber, code string) ([]*domain.TowingRecord, error)
	// AdminLogin verifies operator credentials. Any failure, unknown email
	// included, is domain.ErrInvalidCredentials.
	AdminLogin(ctx context.Context, email, password string) (*domain.Admin, error)
}
