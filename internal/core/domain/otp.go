package domain

import (
	"errors"
	"time"
)

var ErrNoChallenge = errors.New("no otp requested")
var ErrOtpExpired = errors.New("otp expired")
var ErrOtpInvalid = errors.New("invalid otp")

// OtpChallenge is the single outstanding passcode challenge for a plate.
// Issuing a new challenge for the same plate replaces the previous one.
//
// Attempts counts failed verifications but is informational only: no lockout
// is enforced when it grows.
type OtpChallenge struct {
	PlateNumber string    `bson:"plate_number"`
	OtpHash     string    `bson:"otp_hash"`
	ExpiresAt   time.Time `bson:"expires_at"`
	Attempts    int       `bson:"attempts"`
	CreatedAt   time.Time `bson:"created_at"`
}

// Expired reports whether the challenge is past its expiry at the given time.
func (c *OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
