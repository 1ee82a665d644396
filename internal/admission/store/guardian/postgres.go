package guardian

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore persists guardians in PostgreSQL.
type PostgresStore struct {
	db dbtx
}

func NewPostgres(db dbtx) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, g *models.Guardian) error {
	if g == nil {
		return fmt.Errorf("guardian is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guardians (id, first_name, last_name, email, phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		uuid.UUID(g.ID), g.FirstName, g.LastName, g.Email, g.Phone, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("create guardian: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create guardian: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, guardianID id.GuardianID) (*models.Guardian, error) {
	var (
		g     models.Guardian
		rawID uuid.UUID
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, created_at, updated_at
		FROM guardians
		WHERE id = $1`,
		uuid.UUID(guardianID),
	).Scan(&rawID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find guardian: %w", err)
	}
	g.ID = id.GuardianID(rawID)
	return &g, nil
}

func (s *PostgresStore) Delete(ctx context.Context, guardianID id.GuardianID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM guardians WHERE id = $1`, uuid.UUID(guardianID))
	if err != nil {
		return fmt.Errorf("delete guardian: %w", err)
	}
	return nil
}
