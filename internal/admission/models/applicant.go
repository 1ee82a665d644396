package models

import (
	"time"

	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
)

// Applicant is the aggregate root for a submitted admission candidate.
//
// Invariants:
//   - Status is one of the closed ApplicantStatus set; transitions only
//     through the table in status.go
//   - MemberID is set if and only if Status is CONVERTED
//   - Applicants are never physically deleted; DeletedAt marks soft deletion
//   - Personal fields are frozen into the Member at conversion time; a later
//     applicant edit never reaches a converted Member
type Applicant struct {
	ID          id.ApplicantID `json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	DateOfBirth time.Time      `json:"date_of_birth"`
	Sex         string         `json:"sex"`

	GuardianName  string `json:"guardian_name"`
	GuardianEmail string `json:"guardian_email"`
	GuardianPhone string `json:"guardian_phone"`

	Notes             string `json:"notes"`
	PreferredPosition string `json:"preferred_position"`

	Status   ApplicantStatus `json:"status"`
	MemberID *id.MemberID    `json:"member_id,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

func NewApplicant(applicantID id.ApplicantID, firstName, lastName, email string, dateOfBirth time.Time, now time.Time) (*Applicant, error) {
	if firstName == "" || lastName == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "applicant name cannot be empty")
	}
	if email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "applicant email cannot be empty")
	}
	if dateOfBirth.IsZero() || dateOfBirth.After(now) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "applicant date of birth must be in the past")
	}
	return &Applicant{
		ID:          applicantID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		DateOfBirth: dateOfBirth,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CanAdvanceToReview checks the PENDING -> UNDER_REVIEW transition.
func (a *Applicant) CanAdvanceToReview() error {
	if !a.Status.CanTransitionTo(StatusUnderReview) {
		return dErrors.Newf(dErrors.CodeInvalidTransition, "cannot move applicant from %s to review", a.Status)
	}
	return nil
}

// ApplyReview transitions the applicant to UNDER_REVIEW.
// Call CanAdvanceToReview first to validate the transition.
func (a *Applicant) ApplyReview(now time.Time) {
	a.Status = StatusUnderReview
	a.UpdatedAt = now
}

// CanReject checks the transition into REJECTED. An applicant already
// REJECTED is handled by the service as an idempotent no-op, not here.
func (a *Applicant) CanReject() error {
	if !a.Status.CanTransitionTo(StatusRejected) {
		return dErrors.Newf(dErrors.CodeInvalidTransition, "cannot reject applicant in status %s", a.Status)
	}
	return nil
}

// ApplyRejection transitions the applicant to REJECTED.
func (a *Applicant) ApplyRejection(now time.Time) {
	a.Status = StatusRejected
	a.UpdatedAt = now
}

// CanConvert checks the transition into CONVERTED.
func (a *Applicant) CanConvert() error {
	if !a.Status.CanTransitionTo(StatusConverted) {
		return dErrors.Newf(dErrors.CodeInvalidTransition, "cannot convert applicant in status %s", a.Status)
	}
	return nil
}

// ApplyConversion transitions the applicant to CONVERTED and links the
// created member. The persistent equivalent is the store's conditional
// update; this keeps in-memory copies consistent after a successful saga.
func (a *Applicant) ApplyConversion(memberID id.MemberID, now time.Time) {
	a.Status = StatusConverted
	a.MemberID = &memberID
	a.UpdatedAt = now
}

func (a *Applicant) IsDeleted() bool { return a.DeletedAt != nil }
