package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"usip/internal/membership/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a membership repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByUnitAndUser returns the membership for the given unit and user, or nil if none exists.
// The unique constraint on (unit_id, user_id) guarantees at most one row.
func (r *PostgresRepository) GetByUnitAndUser(ctx context.Context, unitID, userID string) (*domain.Membership, error) {
	const q = `SELECT id, unit_id, user_id, role, created_at FROM memberships WHERE unit_id = $1 AND user_id = $2`
	var m domain.Membership
	err := r.db.QueryRowContext(ctx, q, unitID, userID).Scan(&m.ID, &m.UnitID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ListByUnit returns all memberships for the unit, ordered by creation time
// then id so repeated reads over unchanged data yield the same sequence.
func (r *PostgresRepository) ListByUnit(ctx context.Context, unitID string) ([]*domain.Membership, error) {
	const q = `SELECT id, unit_id, user_id, role, created_at FROM memberships WHERE unit_id = $1 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*domain.Membership, 0)
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.ID, &m.UnitID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Create persists the membership. Returns ErrDuplicateMembership when the
// (unit_id, user_id) unique constraint is violated.
func (r *PostgresRepository) Create(ctx context.Context, m *domain.Membership) error {
	const q = `INSERT INTO memberships (id, unit_id, user_id, role, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.UnitID, m.UserID, m.Role, m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateMembership
		}
		return err
	}
	return nil
}
