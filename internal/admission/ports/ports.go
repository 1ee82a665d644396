// Package ports defines the interfaces the admission services depend on.
// Store implementations live under internal/admission/store, the identity
// provider adapter under internal/identity, and the notification publisher
// under internal/notify; all of them implement interfaces declared here.
package ports

import (
	"context"
	"log/slog"
	"time"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/requestcontext"
)

// ApplicantStore persists admission applicants. Status is authoritative in
// the store; services never cache it across requests.
type ApplicantStore interface {
	// FindByID returns the applicant, excluding soft-deleted rows.
	FindByID(ctx context.Context, applicantID id.ApplicantID) (*models.Applicant, error)

	// List returns applicants, newest first, optionally filtered by status.
	List(ctx context.Context, status *models.ApplicantStatus) ([]*models.Applicant, error)

	// Create inserts a new applicant (public submission path and tests).
	Create(ctx context.Context, applicant *models.Applicant) error

	// TransitionStatus conditionally moves an applicant from any of the
	// given statuses to the target status. Returns sentinel.ErrConflict if
	// the current status matched none of them.
	TransitionStatus(ctx context.Context, applicantID id.ApplicantID, from []models.ApplicantStatus, to models.ApplicantStatus, now time.Time) error

	// MarkConverted is the optimistic terminal update: sets CONVERTED and
	// the member reference only while the status is still pre-conversion.
	// Returns sentinel.ErrConflict if another caller won the race.
	MarkConverted(ctx context.Context, applicantID id.ApplicantID, memberID id.MemberID, now time.Time) error

	// SoftDelete marks the applicant deleted; rows are never removed.
	SoftDelete(ctx context.Context, applicantID id.ApplicantID, now time.Time) error
}

// GuardianStore persists guardians.
type GuardianStore interface {
	Create(ctx context.Context, guardian *models.Guardian) error
	FindByID(ctx context.Context, guardianID id.GuardianID) (*models.Guardian, error)

	// Delete removes a guardian row. Only ever invoked as saga compensation
	// for a guardian created in the same conversion attempt; pre-existing
	// guardians are never deleted through this pipeline.
	Delete(ctx context.Context, guardianID id.GuardianID) error
}

// MemberStore persists enrolled members.
type MemberStore interface {
	Create(ctx context.Context, member *models.Member) error
	FindByID(ctx context.Context, memberID id.MemberID) (*models.Member, error)

	// FindByApplicant returns the member a converted applicant produced.
	FindByApplicant(ctx context.Context, applicantID id.ApplicantID) (*models.Member, error)
}

// AccountLinkStore persists external identity account associations.
type AccountLinkStore interface {
	Create(ctx context.Context, link *models.AccountLink) error
	FindByOwner(ctx context.Context, ownerType models.LinkOwnerType, ownerID string) (*models.AccountLink, error)
	DeleteByOwner(ctx context.Context, ownerType models.LinkOwnerType, ownerID string) error
}

// AgeGroupStore reads the pre-existing age classifications.
type AgeGroupStore interface {
	FindByID(ctx context.Context, ageGroupID id.AgeGroupID) (*models.AgeGroup, error)
	List(ctx context.Context) ([]*models.AgeGroup, error)
}

// TxStores bundles the stores scoped to one relational transaction.
type TxStores struct {
	Applicants   ApplicantStore
	Guardians    GuardianStore
	Members      MemberStore
	AccountLinks AccountLinkStore
}

// StoreTx is the transactional boundary over the domain tables. fn runs
// against transaction-scoped stores; any error (or panic) inside fn rolls
// the whole transaction back before propagating.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context, stores TxStores) error) error
}

// AccountProfile carries the display fields the identity provider stores
// alongside an account.
type AccountProfile struct {
	DisplayName string
	Email       string
}

// NewAccount is the input to identity account provisioning.
type NewAccount struct {
	Username string
	Secret   string
	Profile  AccountProfile
}

// IdentityProvider wraps the external authentication system. It is the only
// boundary that talks to it.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, account NewAccount) (id.ExternalAccountID, error)

	// DeleteAccount is safe to call on an already-deleted or non-existent
	// account (treated as success) so compensation never becomes its own
	// failure mode when retried.
	DeleteAccount(ctx context.Context, accountID id.ExternalAccountID) error
}

// Notifier receives post-conversion events. Implementations must be safe to
// call after the terminal status commit; errors are logged by callers, never
// propagated.
type Notifier interface {
	EnrollmentCompleted(ctx context.Context, event models.EnrollmentCompleted) error
}

// LogAudit is the shared helper for audit-style log lines across the
// admission services.
func LogAudit(ctx context.Context, logger *slog.Logger, event string, attrs ...any) {
	if logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attrs = append(attrs, "request_id", requestID)
	}
	args := append(attrs, "event", event, "log_type", "audit")
	logger.InfoContext(ctx, event, args...)
}
