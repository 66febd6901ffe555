package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAdminNotFound = errors.New("admin not found")
var ErrAdminExists = errors.New("admin already exists")

const RoleAdmin = "admin"

// Admin is an operator account, created out-of-band by the seeding tool.
// Login is a stateless password check; no session or token is issued.
type Admin struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
