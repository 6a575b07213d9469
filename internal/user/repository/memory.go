package repository

import (
	"context"
	"fmt"
	"sync"

	"usip/internal/user/domain"
)

// MemoryRepository is an in-memory Repository for tests and DB-less
// development. Reads return copies, so callers never observe a partial
// write and cannot mutate stored records.
type MemoryRepository struct {
	mu sync.RWMutex
	m  map[string]*domain.User
}

// NewMemoryRepository returns a new empty in-memory user repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{m: make(map[string]*domain.User)}
}

// GetByID returns the user for id, or nil if not found.
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	u2 := *u
	return &u2, nil
}

// Create stores a copy of the user. Returns an error if the id is already taken.
func (r *MemoryRepository) Create(ctx context.Context, u *domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[u.ID]; ok {
		return fmt.Errorf("user %q already exists", u.ID)
	}
	u2 := *u
	r.m[u.ID] = &u2
	return nil
}
