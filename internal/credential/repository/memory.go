package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"usip/internal/credential/domain"
)

// MemoryRepository is an in-memory Repository for tests and DB-less development.
type MemoryRepository struct {
	mu sync.RWMutex
	m  map[string]*domain.Credential
}

// NewMemoryRepository returns a new empty in-memory credential repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{m: make(map[string]*domain.Credential)}
}

// GetByToken returns the credential for token, or nil if the token is unknown.
func (r *MemoryRepository) GetByToken(ctx context.Context, token string) (*domain.Credential, error) {
	if token == "" {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.m[token]
	if !ok {
		return nil, nil
	}
	c2 := *c
	return &c2, nil
}

// Create stores a copy of the credential. Returns an error if the token is already mapped.
func (r *MemoryRepository) Create(ctx context.Context, c *domain.Credential) error {
	if c.Token == "" {
		return errors.New("token is required")
	}
	if c.UserID == "" {
		return errors.New("user id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[c.Token]; ok {
		return fmt.Errorf("credential %q already exists", c.Token)
	}
	c2 := *c
	r.m[c.Token] = &c2
	return nil
}
