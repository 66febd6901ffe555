package ports

import (
	"context"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

// AdminRepository defines persistence for operator accounts.
type AdminRepository interface {
	// FindByEmail looks up an admin by lower-cased email, returning
	// domain.ErrAdminNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	// Create inserts a new admin; domain.ErrAdminExists on a duplicate email.
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}
