package repository

import (
	"context"
	"errors"
	"sync"

	"usip/internal/membership/domain"
)

// MemoryRepository is an in-memory Repository for tests and DB-less
// development. Memberships for a unit keep insertion order, which gives
// ListByUnit its stable ordering.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUnit map[string][]*domain.Membership
}

// NewMemoryRepository returns a new empty in-memory membership repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUnit: make(map[string][]*domain.Membership)}
}

// GetByUnitAndUser returns the membership for the given unit and user, or nil if none exists.
func (r *MemoryRepository) GetByUnitAndUser(ctx context.Context, unitID, userID string) (*domain.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.byUnit[unitID] {
		if m.UserID == userID {
			m2 := *m
			return &m2, nil
		}
	}
	return nil, nil
}

// ListByUnit returns all memberships for the unit in insertion order.
func (r *MemoryRepository) ListByUnit(ctx context.Context, unitID string) ([]*domain.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members := r.byUnit[unitID]
	out := make([]*domain.Membership, 0, len(members))
	for _, m := range members {
		m2 := *m
		out = append(out, &m2)
	}
	return out, nil
}

// Create stores a copy of the membership. Returns ErrDuplicateMembership if
// the (unit, user) pair already has one.
func (r *MemoryRepository) Create(ctx context.Context, m *domain.Membership) error {
	if m.UnitID == "" || m.UserID == "" {
		return errors.New("unit id and user id are required")
	}
	if !m.Role.Valid() {
		return errors.New("unknown role")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byUnit[m.UnitID] {
		if existing.UserID == m.UserID {
			return ErrDuplicateMembership
		}
	}
	m2 := *m
	r.byUnit[m.UnitID] = append(r.byUnit[m.UnitID], &m2)
	return nil
}
