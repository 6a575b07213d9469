package repository

import (
	"context"
	"database/sql"
	"errors"

	"usip/internal/credential/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a credential repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByToken returns the credential for token, or nil if the token is unknown.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*domain.Credential, error) {
	if token == "" {
		return nil, nil
	}
	const q = `SELECT token, user_id, created_at FROM credentials WHERE token = $1`
	var c domain.Credential
	err := r.db.QueryRowContext(ctx, q, token).Scan(&c.Token, &c.UserID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persists the credential to the database.
func (r *PostgresRepository) Create(ctx context.Context, c *domain.Credential) error {
	const q = `INSERT INTO credentials (token, user_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, q, c.Token, c.UserID, c.CreatedAt)
	return err
}
