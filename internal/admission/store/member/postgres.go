package member

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

// PostgresStore persists members in PostgreSQL. The unique index on
// applicant_id makes a duplicate conversion surface as ErrConflict here
// even if the status check were ever bypassed.
type PostgresStore struct {
	db dbtx
}

func NewPostgres(db dbtx) *PostgresStore {
	return &PostgresStore{db: db}
}

const memberColumns = `
	id, applicant_id, guardian_id, age_group_id,
	first_name, last_name, date_of_birth, sex,
	position, jersey_number, created_at`

func (s *PostgresStore) Create(ctx context.Context, m *models.Member) error {
	if m == nil {
		return fmt.Errorf("member is required")
	}
	var jersey sql.NullInt32
	if m.JerseyNumber != nil {
		jersey = sql.NullInt32{Int32: int32(*m.JerseyNumber), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO members (
			id, applicant_id, guardian_id, age_group_id,
			first_name, last_name, date_of_birth, sex,
			position, jersey_number, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		uuid.UUID(m.ID), uuid.UUID(m.ApplicantID), uuid.UUID(m.GuardianID), uuid.UUID(m.AgeGroupID),
		m.FirstName, m.LastName, m.DateOfBirth, m.Sex,
		m.Position, jersey, m.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("create member: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, memberID id.MemberID) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE id = $1`,
		uuid.UUID(memberID),
	)
	return scanMember(row)
}

func (s *PostgresStore) FindByApplicant(ctx context.Context, applicantID id.ApplicantID) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE applicant_id = $1`,
		uuid.UUID(applicantID),
	)
	return scanMember(row)
}

func scanMember(row *sql.Row) (*models.Member, error) {
	var (
		m                                models.Member
		rawID, rawApplicant, rawGuardian uuid.UUID
		rawAgeGroup                      uuid.UUID
		jersey                           sql.NullInt32
	)
	err := row.Scan(
		&rawID, &rawApplicant, &rawGuardian, &rawAgeGroup,
		&m.FirstName, &m.LastName, &m.DateOfBirth, &m.Sex,
		&m.Position, &jersey, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	m.ID = id.MemberID(rawID)
	m.ApplicantID = id.ApplicantID(rawApplicant)
	m.GuardianID = id.GuardianID(rawGuardian)
	m.AgeGroupID = id.AgeGroupID(rawAgeGroup)
	if jersey.Valid {
		n := int(jersey.Int32)
		m.JerseyNumber = &n
	}
	return &m, nil
}
