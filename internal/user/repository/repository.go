package repository

import (
	"context"

	"usip/internal/user/domain"
)

// Repository defines persistence for the user directory.
type Repository interface {
	// GetByID returns the user for id, or nil if not found.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// Create persists the user. Used at provisioning time only; the lookup
	// service never writes.
	Create(ctx context.Context, u *domain.User) error
}
