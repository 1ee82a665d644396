package agegroup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore reads the age_groups table. The admission pipeline never
// writes to it.
type PostgresStore struct {
	db dbtx
}

func NewPostgres(db dbtx) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByID(ctx context.Context, ageGroupID id.AgeGroupID) (*models.AgeGroup, error) {
	var (
		g     models.AgeGroup
		rawID uuid.UUID
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, min_age, max_age
		FROM age_groups
		WHERE id = $1`,
		uuid.UUID(ageGroupID),
	).Scan(&rawID, &g.Name, &g.MinAge, &g.MaxAge)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find age group: %w", err)
	}
	g.ID = id.AgeGroupID(rawID)
	return &g, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.AgeGroup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, min_age, max_age
		FROM age_groups
		ORDER BY min_age`)
	if err != nil {
		return nil, fmt.Errorf("list age groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.AgeGroup
	for rows.Next() {
		var (
			g     models.AgeGroup
			rawID uuid.UUID
		)
		if err := rows.Scan(&rawID, &g.Name, &g.MinAge, &g.MaxAge); err != nil {
			return nil, fmt.Errorf("list age groups: %w", err)
		}
		g.ID = id.AgeGroupID(rawID)
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list age groups: %w", err)
	}
	return groups, nil
}
