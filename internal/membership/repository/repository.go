package repository

import (
	"context"
	"errors"

	"usip/internal/membership/domain"
)

// ErrDuplicateMembership is returned by Create when the (unit, user) pair
// already has a membership. Duplicate pairs are a data-integrity violation,
// not a valid state, so they are rejected at the insert boundary.
var ErrDuplicateMembership = errors.New("membership already exists for unit and user")

// Repository defines persistence for memberships.
type Repository interface {
	// GetByUnitAndUser returns the membership for the given unit and user, or nil if none exists.
	GetByUnitAndUser(ctx context.Context, unitID, userID string) (*domain.Membership, error)
	// ListByUnit returns all memberships for the unit in a stable order.
	// Repeated calls over unchanged data return the same sequence. Unknown
	// units yield an empty slice, never an error.
	ListByUnit(ctx context.Context, unitID string) ([]*domain.Membership, error)
	// Create persists the membership. Returns ErrDuplicateMembership if the
	// (unit, user) pair is already taken.
	Create(ctx context.Context, m *domain.Membership) error
}
