package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"touchline/internal/admission/models"
	"touchline/internal/admission/ports"
	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
	"touchline/pkg/email"
	"touchline/pkg/platform/sentinel"
	"touchline/pkg/requestcontext"
)

// GuardianSelection chooses between reusing an existing guardian and creating
// a fresh one during conversion. Exactly one branch must be set.
type GuardianSelection struct {
	ReuseExisting *id.GuardianID
	CreateNew     *NewGuardian
}

// NewGuardian is the input for a guardian created during conversion. Name
// fields are optional; when blank they are derived from the contact email.
type NewGuardian struct {
	ContactEmail string
	RawPassword  string
	FirstName    string
	LastName     string
	Phone        string
}

// MemberDetails carries the enrollment placement for the new member.
type MemberDetails struct {
	AgeGroupID   id.AgeGroupID
	Position     string
	JerseyNumber *int
}

// Credentials is the new member's own identity account login.
type Credentials struct {
	Username    string
	RawPassword string
}

// ConvertResult reports a completed (or previously completed) conversion.
type ConvertResult struct {
	Applicant        *models.Applicant
	Member           *models.Member
	GuardianID       id.GuardianID
	AlreadyConverted bool
}

// compensation undoes one completed forward step. Compensations run in
// strict reverse order of the steps that succeeded.
type compensation struct {
	step    string
	account id.ExternalAccountID
	undo    func(ctx context.Context) error
}

// Convert executes the enrollment conversion saga:
//
//  1. resolve or provision the guardian identity
//  2. persist a new guardian + account link in one transaction
//  3. provision the member identity
//  4. persist member + account link + terminal applicant status in one
//     transaction, guarded by a conditional update on the current status
//
// On any forward-step failure the completed steps are compensated before the
// error is surfaced. A reused pre-existing guardian is never touched. After
// success the notifier is informed; notification failures never affect the
// committed conversion.
func (s *Service) Convert(ctx context.Context, actor Actor, applicantID id.ApplicantID, selection GuardianSelection, details MemberDetails, creds Credentials) (*ConvertResult, error) {
	if err := actor.validate(); err != nil {
		return nil, err
	}
	if err := validateConvertInput(applicantID, selection, details, creds); err != nil {
		// Fail fast: no external call or relational write has happened yet.
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "admission.convert")
	defer span.End()
	start := time.Now()

	applicant, err := s.findApplicant(ctx, applicantID)
	if err != nil {
		return nil, s.failConversion(err)
	}

	// Fast-path idempotency guard. This protects duplicate submissions but
	// is only an optimization: the conditional update in the final
	// transaction is the actual at-most-once guarantee.
	if applicant.Status == models.StatusConverted {
		return s.alreadyConverted(ctx, applicant)
	}
	if err := applicant.CanConvert(); err != nil {
		return nil, s.failConversion(err)
	}

	ageGroup, err := s.ageGroups.FindByID(ctx, details.AgeGroupID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, s.failConversion(dErrors.New(dErrors.CodeNotFound, "age group not found"))
		}
		return nil, s.failConversion(dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup age group"))
	}

	now := requestcontext.Now(ctx)
	var compensations []compensation

	// Step 1: resolve guardian.
	guardianID, _, guardianIsNew, err := s.resolveGuardian(ctx, selection, now, &compensations)
	if err != nil {
		// When provisioning the guardian account itself failed nothing was
		// created and compensations is empty; when persisting the guardian
		// row failed, the account created in step 1 is rolled back here.
		return nil, s.failConversion(s.compensateAndWrap(ctx, compensations, err))
	}

	// Step 3: provision the member's own identity account.
	memberAccountID, err := s.provisionMemberIdentity(ctx, applicant, creds)
	if err != nil {
		return nil, s.failConversion(s.compensateAndWrap(ctx, compensations, err))
	}
	compensations = append(compensations, compensation{
		step:    "provision member identity",
		account: memberAccountID,
		undo: func(ctx context.Context) error {
			return s.identity.DeleteAccount(ctx, memberAccountID)
		},
	})

	// Step 4: persist member, its account link, and the terminal applicant
	// status in one transaction. The conditional update on the applicant's
	// status makes concurrent conversions of the same applicant lose here.
	memberID := id.MemberID(uuid.New())
	position := details.Position
	if position == "" {
		position = applicant.PreferredPosition
	}
	member, err := models.NewMemberFromApplicant(memberID, applicant, guardianID, ageGroup.ID, position, details.JerseyNumber, now)
	if err != nil {
		return nil, s.failConversion(s.compensateAndWrap(ctx, compensations, err))
	}
	memberLink, err := models.NewMemberLink(id.LinkID(uuid.New()), memberID, memberAccountID, now)
	if err != nil {
		return nil, s.failConversion(s.compensateAndWrap(ctx, compensations, err))
	}

	txCtx, txSpan := s.tracer.Start(ctx, "admission.convert.persist_member")
	err = s.tx.RunInTx(txCtx, func(txCtx context.Context, stores ports.TxStores) error {
		if err := stores.Members.Create(txCtx, member); err != nil {
			return err
		}
		if err := stores.AccountLinks.Create(txCtx, memberLink); err != nil {
			return err
		}
		return stores.Applicants.MarkConverted(txCtx, applicantID, memberID, now)
	})
	txSpan.End()
	if err != nil {
		wrapped := s.compensateAndWrap(ctx, compensations, err)
		if errors.Is(err, sentinel.ErrConflict) && !dErrors.HasCode(wrapped, dErrors.CodeCompensationFailed) {
			// A concurrent conversion won the optimistic check. Everything
			// created in this invocation has been rolled back.
			return nil, s.failConversion(dErrors.New(dErrors.CodeConflict, "applicant was converted by a concurrent request"))
		}
		return nil, s.failConversion(wrapped)
	}

	applicant.ApplyConversion(memberID, now)

	if s.metrics != nil {
		s.metrics.IncConversions()
		s.metrics.ObserveConversionDuration(time.Since(start).Seconds())
	}
	ports.LogAudit(ctx, s.logger, "applicant_converted",
		"applicant_id", applicantID.String(),
		"member_id", memberID.String(),
		"guardian_id", guardianID.String(),
		"guardian_new", guardianIsNew,
		"actor_id", actor.ID.String(),
		"actor_role", actor.Role,
	)

	// The terminal status is durably committed; inform the dispatcher.
	s.notifyEnrollment(ctx, models.EnrollmentCompleted{
		ApplicantID: applicantID,
		MemberID:    memberID,
		GuardianID:  guardianID,
		Outcome:     "converted",
		Timestamp:   now,
	})

	return &ConvertResult{
		Applicant:  applicant,
		Member:     member,
		GuardianID: guardianID,
	}, nil
}

func validateConvertInput(applicantID id.ApplicantID, selection GuardianSelection, details MemberDetails, creds Credentials) error {
	if applicantID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "applicant ID required")
	}
	switch {
	case selection.ReuseExisting == nil && selection.CreateNew == nil:
		return dErrors.New(dErrors.CodeValidation, "guardian selection required")
	case selection.ReuseExisting != nil && selection.CreateNew != nil:
		return dErrors.New(dErrors.CodeValidation, "guardian selection must reuse an existing guardian or create a new one, not both")
	case selection.ReuseExisting != nil && selection.ReuseExisting.IsNil():
		return dErrors.New(dErrors.CodeValidation, "guardian ID required when reusing a guardian")
	case selection.CreateNew != nil && strings.TrimSpace(selection.CreateNew.ContactEmail) == "":
		return dErrors.New(dErrors.CodeValidation, "guardian contact email required")
	case selection.CreateNew != nil && selection.CreateNew.RawPassword == "":
		return dErrors.New(dErrors.CodeValidation, "guardian password required")
	}
	if strings.TrimSpace(creds.Username) == "" {
		return dErrors.New(dErrors.CodeValidation, "member username required")
	}
	if creds.RawPassword == "" {
		return dErrors.New(dErrors.CodeValidation, "member password required")
	}
	if details.AgeGroupID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "age group required")
	}
	return nil
}

// resolveGuardian executes saga steps 1 and 2: either fetch the reused
// guardian, or provision its identity account and persist the new guardian
// row + account link in one transaction. Compensations for created resources
// are appended to comps in completion order.
func (s *Service) resolveGuardian(ctx context.Context, selection GuardianSelection, now time.Time, comps *[]compensation) (id.GuardianID, id.ExternalAccountID, bool, error) {
	if selection.ReuseExisting != nil {
		guardian, err := s.guardians.FindByID(ctx, *selection.ReuseExisting)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return id.GuardianID{}, "", false, dErrors.New(dErrors.CodeNotFound, "guardian not found")
			}
			return id.GuardianID{}, "", false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup guardian")
		}
		// Read-only reuse: this guardian is never mutated or deleted by the
		// pipeline, so no compensation is registered for it.
		return guardian.ID, "", false, nil
	}

	input := selection.CreateNew
	firstName, lastName := input.FirstName, input.LastName
	if firstName == "" || lastName == "" {
		firstName, lastName = email.DeriveNameFromEmail(input.ContactEmail)
	}

	idpCtx, idpSpan := s.tracer.Start(ctx, "admission.convert.provision_guardian")
	accountID, err := s.identity.CreateAccount(idpCtx, ports.NewAccount{
		Username: input.ContactEmail,
		Secret:   input.RawPassword,
		Profile: ports.AccountProfile{
			DisplayName: firstName + " " + lastName,
			Email:       input.ContactEmail,
		},
	})
	idpSpan.End()
	if err != nil {
		return id.GuardianID{}, "", false, dErrors.Wrap(err, dErrors.CodeIdentityProvider, "guardian account provisioning failed")
	}
	*comps = append(*comps, compensation{
		step:    "provision guardian identity",
		account: accountID,
		undo: func(ctx context.Context) error {
			return s.identity.DeleteAccount(ctx, accountID)
		},
	})

	guardianID := id.GuardianID(uuid.New())
	guardian, err := models.NewGuardian(guardianID, firstName, lastName, input.ContactEmail, input.Phone, now)
	if err != nil {
		return id.GuardianID{}, "", false, err
	}
	link, err := models.NewGuardianLink(id.LinkID(uuid.New()), guardianID, accountID, now)
	if err != nil {
		return id.GuardianID{}, "", false, err
	}

	txCtx, txSpan := s.tracer.Start(ctx, "admission.convert.persist_guardian")
	err = s.tx.RunInTx(txCtx, func(txCtx context.Context, stores ports.TxStores) error {
		if err := stores.Guardians.Create(txCtx, guardian); err != nil {
			return err
		}
		return stores.AccountLinks.Create(txCtx, link)
	})
	txSpan.End()
	if err != nil {
		return id.GuardianID{}, "", false, dErrors.Wrap(err, dErrors.CodePersistence, "failed to persist guardian")
	}
	*comps = append(*comps, compensation{
		step: "persist guardian",
		undo: func(ctx context.Context) error {
			return s.tx.RunInTx(ctx, func(txCtx context.Context, stores ports.TxStores) error {
				if err := stores.AccountLinks.DeleteByOwner(txCtx, models.OwnerGuardian, guardianID.String()); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
					return err
				}
				return stores.Guardians.Delete(txCtx, guardianID)
			})
		},
	})

	return guardianID, accountID, true, nil
}

func (s *Service) provisionMemberIdentity(ctx context.Context, applicant *models.Applicant, creds Credentials) (id.ExternalAccountID, error) {
	idpCtx, idpSpan := s.tracer.Start(ctx, "admission.convert.provision_member")
	defer idpSpan.End()

	accountID, err := s.identity.CreateAccount(idpCtx, ports.NewAccount{
		Username: creds.Username,
		Secret:   creds.RawPassword,
		Profile: ports.AccountProfile{
			DisplayName: applicant.FirstName + " " + applicant.LastName,
			Email:       applicant.Email,
		},
	})
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeIdentityProvider, "member account provisioning failed")
	}
	return accountID, nil
}

// compensateAndWrap runs the registered compensations in reverse order and
// wraps cause with the appropriate error code. If any compensation itself
// fails, the result is CodeCompensationFailed naming the step and external
// account so an operator can clean up by hand; that error is never swallowed.
func (s *Service) compensateAndWrap(ctx context.Context, comps []compensation, cause error) error {
	var failures []string
	for i := len(comps) - 1; i >= 0; i-- {
		c := comps[i]
		if s.metrics != nil {
			s.metrics.IncCompensations()
		}
		if undoErr := c.undo(ctx); undoErr != nil {
			detail := c.step
			if !c.account.IsEmpty() {
				detail = fmt.Sprintf("%s (external account %s)", c.step, c.account)
			}
			failures = append(failures, detail)
			if s.logger != nil {
				s.logger.ErrorContext(ctx, "saga compensation failed",
					"step", c.step,
					"external_account_id", c.account.String(),
					"error", undoErr,
				)
			}
		}
	}
	if len(failures) > 0 {
		if s.metrics != nil {
			s.metrics.IncCompensationFailures()
		}
		return dErrors.Wrap(cause, dErrors.CodeCompensationFailed,
			fmt.Sprintf("rollback incomplete, operator cleanup required: %s", strings.Join(failures, "; ")))
	}

	// Full rollback succeeded; surface the forward-step error with its code.
	var coded *dErrors.Error
	if errors.As(cause, &coded) {
		return cause
	}
	if errors.Is(cause, sentinel.ErrConflict) {
		return cause
	}
	return dErrors.Wrap(cause, dErrors.CodePersistence, "enrollment transaction failed")
}

// alreadyConverted serves the idempotent fast path: the applicant has a
// committed conversion, so return it without re-running the saga.
func (s *Service) alreadyConverted(ctx context.Context, applicant *models.Applicant) (*ConvertResult, error) {
	member, err := s.members.FindByApplicant(ctx, applicant.ID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// CONVERTED with no member row violates the global invariant.
			return nil, dErrors.New(dErrors.CodeInternal, "converted applicant has no member record")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup member")
	}
	ports.LogAudit(ctx, s.logger, "conversion_noop_already_converted",
		"applicant_id", applicant.ID.String(),
		"member_id", member.ID.String(),
	)
	return &ConvertResult{
		Applicant:        applicant,
		Member:           member,
		GuardianID:       member.GuardianID,
		AlreadyConverted: true,
	}, nil
}

func (s *Service) failConversion(err error) error {
	if s.metrics != nil {
		s.metrics.IncConversionFailure(string(dErrors.CodeOf(err)))
	}
	return err
}

func (s *Service) notifyEnrollment(ctx context.Context, event models.EnrollmentCompleted) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.EnrollmentCompleted(ctx, event); err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "enrollment notification dispatch failed",
			"applicant_id", event.ApplicantID.String(),
			"member_id", event.MemberID.String(),
			"error", err,
		)
	}
}
