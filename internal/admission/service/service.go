// Package service implements the admission state machine and the enrollment
// conversion saga. The state machine governs legal status transitions; the
// saga (convert.go) owns the cross-system ordering and compensation logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"touchline/internal/admission/metrics"
	"touchline/internal/admission/models"
	"touchline/internal/admission/ports"
	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
	"touchline/pkg/platform/sentinel"
	"touchline/pkg/requestcontext"
)

// Actor is the acting staff identity, passed explicitly on every operation.
// There is no ambient "current admin session"; callers must say who acts.
type Actor struct {
	ID   id.StaffID
	Role string
}

func (a Actor) validate() error {
	if a.ID.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "acting staff identity required")
	}
	return nil
}

// Service exposes the admission operations consumed by the transport layer:
// AdvanceToReview, Reject, Convert, plus the staff read paths.
type Service struct {
	applicants ports.ApplicantStore
	guardians  ports.GuardianStore
	members    ports.MemberStore
	ageGroups  ports.AgeGroupStore
	identity   ports.IdentityProvider
	tx         ports.StoreTx

	notifier ports.Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithNotifier(n ports.Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func New(
	applicants ports.ApplicantStore,
	guardians ports.GuardianStore,
	members ports.MemberStore,
	ageGroups ports.AgeGroupStore,
	identity ports.IdentityProvider,
	tx ports.StoreTx,
	opts ...Option,
) (*Service, error) {
	if applicants == nil {
		return nil, fmt.Errorf("applicant store is required")
	}
	if guardians == nil {
		return nil, fmt.Errorf("guardian store is required")
	}
	if members == nil {
		return nil, fmt.Errorf("member store is required")
	}
	if ageGroups == nil {
		return nil, fmt.Errorf("age group store is required")
	}
	if identity == nil {
		return nil, fmt.Errorf("identity provider is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("store tx runner is required")
	}

	svc := &Service{
		applicants: applicants,
		guardians:  guardians,
		members:    members,
		ageGroups:  ageGroups,
		identity:   identity,
		tx:         tx,
		tracer:     otel.Tracer("touchline/admission"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// AdvanceToReview moves a PENDING applicant to UNDER_REVIEW.
func (s *Service) AdvanceToReview(ctx context.Context, actor Actor, applicantID id.ApplicantID) (*models.Applicant, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if applicantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "applicant ID required")
	}

	applicant, err := s.findApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if err := applicant.CanAdvanceToReview(); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	err = s.applicants.TransitionStatus(ctx, applicantID, []models.ApplicantStatus{models.StatusPending}, models.StatusUnderReview, now)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeInvalidTransition, "applicant left the pending state concurrently")
		}
		return nil, dErrors.Wrap(err, dErrors.CodePersistence, "failed to update applicant status")
	}
	applicant.ApplyReview(now)

	if s.metrics != nil {
		s.metrics.IncReviews()
	}
	ports.LogAudit(ctx, s.logger, "applicant_advanced_to_review",
		"applicant_id", applicantID.String(),
		"actor_id", actor.ID.String(),
		"actor_role", actor.Role,
	)
	return applicant, nil
}

// RejectResult distinguishes a fresh rejection from the idempotent re-reject
// of an already-REJECTED applicant. The latter is not an error to the caller
// but is reported distinctly from a genuine state change.
type RejectResult struct {
	Applicant       *models.Applicant
	AlreadyRejected bool
}

// Reject moves a PENDING or UNDER_REVIEW applicant to REJECTED.
func (s *Service) Reject(ctx context.Context, actor Actor, applicantID id.ApplicantID) (*RejectResult, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if applicantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "applicant ID required")
	}

	applicant, err := s.findApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant.Status == models.StatusRejected {
		return &RejectResult{Applicant: applicant, AlreadyRejected: true}, nil
	}
	if err := applicant.CanReject(); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	err = s.applicants.TransitionStatus(ctx, applicantID, models.PreConversionStatuses(), models.StatusRejected, now)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			// Lost a race; re-read to tell idempotent re-reject from a
			// genuinely illegal transition.
			current, findErr := s.findApplicant(ctx, applicantID)
			if findErr == nil && current.Status == models.StatusRejected {
				return &RejectResult{Applicant: current, AlreadyRejected: true}, nil
			}
			return nil, dErrors.New(dErrors.CodeInvalidTransition, "applicant reached a terminal state concurrently")
		}
		return nil, dErrors.Wrap(err, dErrors.CodePersistence, "failed to update applicant status")
	}
	applicant.ApplyRejection(now)

	if s.metrics != nil {
		s.metrics.IncRejections()
	}
	ports.LogAudit(ctx, s.logger, "applicant_rejected",
		"applicant_id", applicantID.String(),
		"actor_id", actor.ID.String(),
		"actor_role", actor.Role,
	)
	return &RejectResult{Applicant: applicant}, nil
}

// GetApplicant returns a single applicant for the review screen.
func (s *Service) GetApplicant(ctx context.Context, actor Actor, applicantID id.ApplicantID) (*models.Applicant, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if applicantID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "applicant ID required")
	}
	return s.findApplicant(ctx, applicantID)
}

// ListApplicants returns applicants, optionally filtered by status.
func (s *Service) ListApplicants(ctx context.Context, actor Actor, status *models.ApplicantStatus) ([]*models.Applicant, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown status filter")
	}
	applicants, err := s.applicants.List(ctx, status)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list applicants")
	}
	return applicants, nil
}

// DeleteApplicant soft-deletes an applicant. The row stays behind for audit
// and for the member provenance of converted applicants.
func (s *Service) DeleteApplicant(ctx context.Context, actor Actor, applicantID id.ApplicantID) error {
	if err := actor.validate(); err != nil {
		return err
	}
	if applicantID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "applicant ID required")
	}

	now := requestcontext.Now(ctx)
	if err := s.applicants.SoftDelete(ctx, applicantID, now); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "applicant not found")
		}
		return dErrors.Wrap(err, dErrors.CodePersistence, "failed to delete applicant")
	}
	ports.LogAudit(ctx, s.logger, "applicant_deleted",
		"applicant_id", applicantID.String(),
		"actor_id", actor.ID.String(),
		"actor_role", actor.Role,
	)
	return nil
}

// ListAgeGroups returns the age classification catalog for the enrollment
// form. The catalog is read-only from this pipeline's perspective.
func (s *Service) ListAgeGroups(ctx context.Context, actor Actor) ([]*models.AgeGroup, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	groups, err := s.ageGroups.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list age groups")
	}
	return groups, nil
}

func (s *Service) findApplicant(ctx context.Context, applicantID id.ApplicantID) (*models.Applicant, error) {
	applicant, err := s.applicants.FindByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "applicant not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup applicant")
	}
	return applicant, nil
}
