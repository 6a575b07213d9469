package repository

import (
	"context"

	"usip/internal/credential/domain"
)

// Repository defines persistence for credentials.
type Repository interface {
	// GetByToken returns the credential for token, or nil if the token is
	// unknown. An unknown or empty token is a data outcome, never an error.
	GetByToken(ctx context.Context, token string) (*domain.Credential, error)
	// Create persists the credential. Used at provisioning time only.
	Create(ctx context.Context, c *domain.Credential) error
}
