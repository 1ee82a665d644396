package applicant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

// dbtx abstracts *sql.DB and *sql.Tx so the same store works inside and
// outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore persists applicants in PostgreSQL.
type PostgresStore struct {
	db dbtx
}

// NewPostgres constructs a PostgreSQL-backed applicant store.
func NewPostgres(db dbtx) *PostgresStore {
	return &PostgresStore{db: db}
}

const applicantColumns = `
	id, first_name, last_name, email, phone, date_of_birth, sex,
	guardian_name, guardian_email, guardian_phone, notes, preferred_position,
	status, member_id, created_at, updated_at, deleted_at`

func (s *PostgresStore) Create(ctx context.Context, a *models.Applicant) error {
	if a == nil {
		return fmt.Errorf("applicant is required")
	}
	var memberID uuid.NullUUID
	if a.MemberID != nil {
		memberID = uuid.NullUUID{UUID: uuid.UUID(*a.MemberID), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO applicants (
			id, first_name, last_name, email, phone, date_of_birth, sex,
			guardian_name, guardian_email, guardian_phone, notes, preferred_position,
			status, member_id, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		uuid.UUID(a.ID), a.FirstName, a.LastName, a.Email, a.Phone, a.DateOfBirth, a.Sex,
		a.GuardianName, a.GuardianEmail, a.GuardianPhone, a.Notes, a.PreferredPosition,
		string(a.Status), memberID, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create applicant: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create applicant: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, applicantID id.ApplicantID) (*models.Applicant, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		WHERE id = $1 AND deleted_at IS NULL`,
		uuid.UUID(applicantID),
	)
	a, err := scanApplicant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find applicant: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) List(ctx context.Context, status *models.ApplicantStatus) ([]*models.Applicant, error) {
	query := `
		SELECT ` + applicantColumns + `
		FROM applicants
		WHERE deleted_at IS NULL`
	args := []any{}
	if status != nil {
		query += ` AND status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []*models.Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("list applicants: %w", err)
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	return applicants, nil
}

// TransitionStatus is the conditional status update. Zero affected rows
// means the applicant was not in any of the expected states (or does not
// exist) and surfaces as ErrConflict.
func (s *PostgresStore) TransitionStatus(ctx context.Context, applicantID id.ApplicantID, from []models.ApplicantStatus, to models.ApplicantStatus, now time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applicants
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = ANY($4) AND deleted_at IS NULL`,
		string(to), now, uuid.UUID(applicantID), pq.Array(statusStrings(from)),
	)
	if err != nil {
		return fmt.Errorf("transition applicant status: %w", err)
	}
	return requireOneRow(res, "transition applicant status")
}

// MarkConverted is the optimistic terminal update backing the saga's
// at-most-once guarantee: it only succeeds while the status is still
// pre-conversion.
func (s *PostgresStore) MarkConverted(ctx context.Context, applicantID id.ApplicantID, memberID id.MemberID, now time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applicants
		SET status = $1, member_id = $2, updated_at = $3
		WHERE id = $4 AND status = ANY($5) AND deleted_at IS NULL`,
		string(models.StatusConverted), uuid.UUID(memberID), now,
		uuid.UUID(applicantID), pq.Array(statusStrings(models.PreConversionStatuses())),
	)
	if err != nil {
		return fmt.Errorf("mark applicant converted: %w", err)
	}
	return requireOneRow(res, "mark applicant converted")
}

func (s *PostgresStore) SoftDelete(ctx context.Context, applicantID id.ApplicantID, now time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applicants
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL`,
		now, uuid.UUID(applicantID),
	)
	if err != nil {
		return fmt.Errorf("soft delete applicant: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete applicant: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplicant(row scanner) (*models.Applicant, error) {
	var (
		a         models.Applicant
		rawID     uuid.UUID
		rawStatus string
		memberID  uuid.NullUUID
		deletedAt sql.NullTime
	)
	err := row.Scan(
		&rawID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.DateOfBirth, &a.Sex,
		&a.GuardianName, &a.GuardianEmail, &a.GuardianPhone, &a.Notes, &a.PreferredPosition,
		&rawStatus, &memberID, &a.CreatedAt, &a.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	a.ID = id.ApplicantID(rawID)
	status, err := models.ParseApplicantStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	a.Status = status
	if memberID.Valid {
		mid := id.MemberID(memberID.UUID)
		a.MemberID = &mid
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		a.DeletedAt = &t
	}
	return &a, nil
}

func statusStrings(statuses []models.ApplicantStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func requireOneRow(res sql.Result, op string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, sentinel.ErrConflict)
	}
	return nil
}

// isUniqueViolation detects PostgreSQL unique constraint errors (23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
