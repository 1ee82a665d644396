package service

//go:generate mockgen -destination=mocks/mocks.go -package=mocks touchline/internal/admission/ports ApplicantStore,GuardianStore,MemberStore,AccountLinkStore,AgeGroupStore,StoreTx,IdentityProvider,Notifier

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"touchline/internal/admission/models"
	"touchline/internal/admission/service/mocks"
	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
	"touchline/pkg/platform/sentinel"
	"touchline/pkg/requestcontext"
)

// =============================================================================
// Admission Service Test Suite
// =============================================================================
// Justification for unit tests: the state machine's transition rules and the
// race handling around the conditional status update are hard to exercise
// precisely through E2E tests, which cannot force a lost update.

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	applicants *mocks.MockApplicantStore
	guardians  *mocks.MockGuardianStore
	members    *mocks.MockMemberStore
	ageGroups  *mocks.MockAgeGroupStore
	identity   *mocks.MockIdentityProvider
	links      *mocks.MockAccountLinkStore
	tx         *mocks.MockStoreTx
	notifier   *mocks.MockNotifier
	service    *Service

	actor Actor
	now   time.Time
	ctx   context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.applicants = mocks.NewMockApplicantStore(s.ctrl)
	s.guardians = mocks.NewMockGuardianStore(s.ctrl)
	s.members = mocks.NewMockMemberStore(s.ctrl)
	s.ageGroups = mocks.NewMockAgeGroupStore(s.ctrl)
	s.identity = mocks.NewMockIdentityProvider(s.ctrl)
	s.links = mocks.NewMockAccountLinkStore(s.ctrl)
	s.tx = mocks.NewMockStoreTx(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var err error
	s.service, err = New(s.applicants, s.guardians, s.members, s.ageGroups, s.identity, s.tx,
		WithLogger(logger),
		WithNotifier(s.notifier),
	)
	s.Require().NoError(err)

	s.actor = Actor{ID: id.StaffID(uuid.New()), Role: "admissions_officer"}
	s.now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) applicant(status models.ApplicantStatus) *models.Applicant {
	return &models.Applicant{
		ID:          id.ApplicantID(uuid.New()),
		FirstName:   "Maya",
		LastName:    "Okafor",
		Email:       "maya.okafor@example.com",
		DateOfBirth: time.Date(2014, 6, 2, 0, 0, 0, 0, time.UTC),
		Status:      status,
		CreatedAt:   s.now.Add(-48 * time.Hour),
		UpdatedAt:   s.now.Add(-48 * time.Hour),
	}
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *ServiceSuite) TestNew() {
	s.Run("nil applicant store returns error", func() {
		_, err := New(nil, s.guardians, s.members, s.ageGroups, s.identity, s.tx)
		s.Error(err)
		s.Contains(err.Error(), "applicant store is required")
	})

	s.Run("nil identity provider returns error", func() {
		_, err := New(s.applicants, s.guardians, s.members, s.ageGroups, nil, s.tx)
		s.Error(err)
		s.Contains(err.Error(), "identity provider is required")
	})

	s.Run("nil tx runner returns error", func() {
		_, err := New(s.applicants, s.guardians, s.members, s.ageGroups, s.identity, nil)
		s.Error(err)
		s.Contains(err.Error(), "store tx runner is required")
	})

	s.Run("all deps returns configured service", func() {
		svc, err := New(s.applicants, s.guardians, s.members, s.ageGroups, s.identity, s.tx)
		s.NoError(err)
		s.NotNil(svc)
	})
}

// =============================================================================
// AdvanceToReview Tests
// =============================================================================

func (s *ServiceSuite) TestAdvanceToReview() {
	s.Run("missing actor is unauthorized", func() {
		_, err := s.service.AdvanceToReview(s.ctx, Actor{}, id.ApplicantID(uuid.New()))
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("pending applicant moves to under review", func() {
		applicant := s.applicant(models.StatusPending)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)
		s.applicants.EXPECT().
			TransitionStatus(gomock.Any(), applicant.ID, []models.ApplicantStatus{models.StatusPending}, models.StatusUnderReview, s.now).
			Return(nil)

		got, err := s.service.AdvanceToReview(s.ctx, s.actor, applicant.ID)
		s.NoError(err)
		s.Equal(models.StatusUnderReview, got.Status)
		s.Equal(s.now, got.UpdatedAt)
	})

	s.Run("unknown applicant is not found", func() {
		applicantID := id.ApplicantID(uuid.New())
		s.applicants.EXPECT().FindByID(gomock.Any(), applicantID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.AdvanceToReview(s.ctx, s.actor, applicantID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("rejected applicant cannot enter review", func() {
		applicant := s.applicant(models.StatusRejected)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)

		_, err := s.service.AdvanceToReview(s.ctx, s.actor, applicant.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	})

	s.Run("lost update race maps to invalid transition", func() {
		applicant := s.applicant(models.StatusPending)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)
		s.applicants.EXPECT().
			TransitionStatus(gomock.Any(), applicant.ID, gomock.Any(), models.StatusUnderReview, s.now).
			Return(sentinel.ErrConflict)

		_, err := s.service.AdvanceToReview(s.ctx, s.actor, applicant.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	})
}

// =============================================================================
// Reject Tests
// =============================================================================

func (s *ServiceSuite) TestReject() {
	s.Run("pending applicant is rejected", func() {
		applicant := s.applicant(models.StatusPending)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)
		s.applicants.EXPECT().
			TransitionStatus(gomock.Any(), applicant.ID, models.PreConversionStatuses(), models.StatusRejected, s.now).
			Return(nil)

		result, err := s.service.Reject(s.ctx, s.actor, applicant.ID)
		s.NoError(err)
		s.False(result.AlreadyRejected)
		s.Equal(models.StatusRejected, result.Applicant.Status)
	})

	s.Run("under review applicant is rejected", func() {
		applicant := s.applicant(models.StatusUnderReview)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)
		s.applicants.EXPECT().
			TransitionStatus(gomock.Any(), applicant.ID, models.PreConversionStatuses(), models.StatusRejected, s.now).
			Return(nil)

		result, err := s.service.Reject(s.ctx, s.actor, applicant.ID)
		s.NoError(err)
		s.False(result.AlreadyRejected)
	})

	s.Run("already rejected applicant is an idempotent no-op", func() {
		applicant := s.applicant(models.StatusRejected)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)
		// No TransitionStatus call: the state is already terminal.

		result, err := s.service.Reject(s.ctx, s.actor, applicant.ID)
		s.NoError(err)
		s.True(result.AlreadyRejected)
	})

	s.Run("converted applicant cannot be rejected", func() {
		applicant := s.applicant(models.StatusConverted)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)

		_, err := s.service.Reject(s.ctx, s.actor, applicant.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	})

	s.Run("race lost to a concurrent reject stays idempotent", func() {
		applicant := s.applicant(models.StatusPending)
		rejected := s.applicant(models.StatusRejected)
		rejected.ID = applicant.ID

		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)
		s.applicants.EXPECT().
			TransitionStatus(gomock.Any(), applicant.ID, gomock.Any(), models.StatusRejected, s.now).
			Return(sentinel.ErrConflict)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(rejected, nil)

		result, err := s.service.Reject(s.ctx, s.actor, applicant.ID)
		s.NoError(err)
		s.True(result.AlreadyRejected)
	})

	s.Run("race lost to a concurrent convert is an invalid transition", func() {
		applicant := s.applicant(models.StatusUnderReview)
		converted := s.applicant(models.StatusConverted)
		converted.ID = applicant.ID

		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)
		s.applicants.EXPECT().
			TransitionStatus(gomock.Any(), applicant.ID, gomock.Any(), models.StatusRejected, s.now).
			Return(sentinel.ErrConflict)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(converted, nil)

		_, err := s.service.Reject(s.ctx, s.actor, applicant.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	})
}

// =============================================================================
// Read Path Tests
// =============================================================================

func (s *ServiceSuite) TestGetApplicant() {
	s.Run("returns the applicant", func() {
		applicant := s.applicant(models.StatusPending)
		s.applicants.EXPECT().FindByID(gomock.Any(), applicant.ID).Return(applicant, nil)

		got, err := s.service.GetApplicant(s.ctx, s.actor, applicant.ID)
		s.NoError(err)
		s.Equal(applicant.ID, got.ID)
	})

	s.Run("nil applicant ID fails validation", func() {
		_, err := s.service.GetApplicant(s.ctx, s.actor, id.ApplicantID{})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestListApplicants() {
	s.Run("passes the status filter through", func() {
		status := models.StatusUnderReview
		s.applicants.EXPECT().List(gomock.Any(), &status).Return([]*models.Applicant{s.applicant(status)}, nil)

		applicants, err := s.service.ListApplicants(s.ctx, s.actor, &status)
		s.NoError(err)
		s.Len(applicants, 1)
	})

	s.Run("unknown status filter fails validation", func() {
		status := models.ApplicantStatus("ARCHIVED")
		_, err := s.service.ListApplicants(s.ctx, s.actor, &status)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

// =============================================================================
// DeleteApplicant Tests
// =============================================================================

func (s *ServiceSuite) TestDeleteApplicant() {
	s.Run("soft deletes the applicant", func() {
		applicantID := id.ApplicantID(uuid.New())
		s.applicants.EXPECT().SoftDelete(gomock.Any(), applicantID, s.now).Return(nil)

		s.NoError(s.service.DeleteApplicant(s.ctx, s.actor, applicantID))
	})

	s.Run("unknown applicant is not found", func() {
		applicantID := id.ApplicantID(uuid.New())
		s.applicants.EXPECT().SoftDelete(gomock.Any(), applicantID, s.now).Return(sentinel.ErrNotFound)

		err := s.service.DeleteApplicant(s.ctx, s.actor, applicantID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("store failure maps to persistence error", func() {
		applicantID := id.ApplicantID(uuid.New())
		s.applicants.EXPECT().SoftDelete(gomock.Any(), applicantID, s.now).Return(errors.New("connection reset"))

		err := s.service.DeleteApplicant(s.ctx, s.actor, applicantID)
		s.True(dErrors.HasCode(err, dErrors.CodePersistence))
	})
}

// =============================================================================
// ListAgeGroups Tests
// =============================================================================

func (s *ServiceSuite) TestListAgeGroups() {
	s.Run("returns the catalog", func() {
		groups := []*models.AgeGroup{
			{ID: id.AgeGroupID(uuid.New()), Name: "U10", MinAge: 8, MaxAge: 10},
			{ID: id.AgeGroupID(uuid.New()), Name: "U12", MinAge: 10, MaxAge: 12},
		}
		s.ageGroups.EXPECT().List(gomock.Any()).Return(groups, nil)

		got, err := s.service.ListAgeGroups(s.ctx, s.actor)
		s.Require().NoError(err)
		s.Equal(groups, got)
	})

	s.Run("requires an actor", func() {
		_, err := s.service.ListAgeGroups(s.ctx, Actor{})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("store failure maps to internal error", func() {
		s.ageGroups.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := s.service.ListAgeGroups(s.ctx, s.actor)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
