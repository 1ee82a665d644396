package accountlink

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

// PostgresStore persists external identity account links. Uniqueness on
// (owner_type, owner_id) and on account_id is enforced by the schema.
type PostgresStore struct {
	db dbtx
}

func NewPostgres(db dbtx) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, link *models.AccountLink) error {
	if link == nil {
		return fmt.Errorf("account link is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO account_links (id, owner_type, owner_id, account_id, created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		uuid.UUID(link.ID), string(link.OwnerType), link.OwnerID, link.AccountID.String(), link.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("create account link: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create account link: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByOwner(ctx context.Context, ownerType models.LinkOwnerType, ownerID string) (*models.AccountLink, error) {
	var (
		link       models.AccountLink
		rawID      uuid.UUID
		rawType    string
		rawAccount string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner_type, owner_id, account_id, created_at
		FROM account_links
		WHERE owner_type = $1 AND owner_id = $2`,
		string(ownerType), ownerID,
	).Scan(&rawID, &rawType, &link.OwnerID, &rawAccount, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find account link: %w", err)
	}
	link.ID = id.LinkID(rawID)
	link.OwnerType = models.LinkOwnerType(rawType)
	link.AccountID = id.ExternalAccountID(rawAccount)
	return &link, nil
}

func (s *PostgresStore) DeleteByOwner(ctx context.Context, ownerType models.LinkOwnerType, ownerID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM account_links
		WHERE owner_type = $1 AND owner_id = $2`,
		string(ownerType), ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete account link: %w", err)
	}
	return nil
}
