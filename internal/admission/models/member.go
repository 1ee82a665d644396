package models

import (
	"time"

	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
)

// Member is the enrolled player record created on successful conversion.
//
// Invariants:
//   - Exactly one Member exists per converted Applicant (unique index on
//     applicant_id backs this)
//   - Personal fields are copied from the Applicant at conversion time and
//     are not live-linked to it
//   - GuardianID and AgeGroupID are immutable after construction
type Member struct {
	ID          id.MemberID    `json:"id"`
	ApplicantID id.ApplicantID `json:"applicant_id"`
	GuardianID  id.GuardianID  `json:"guardian_id"`
	AgeGroupID  id.AgeGroupID  `json:"age_group_id"`

	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Sex         string    `json:"sex"`

	Position     string `json:"position,omitempty"`
	JerseyNumber *int   `json:"jersey_number,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewMemberFromApplicant freezes the applicant's personal fields into a new
// member at this instant.
func NewMemberFromApplicant(memberID id.MemberID, applicant *Applicant, guardianID id.GuardianID, ageGroupID id.AgeGroupID, position string, jerseyNumber *int, now time.Time) (*Member, error) {
	if applicant == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "applicant is required")
	}
	if guardianID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "guardian ID is required")
	}
	if ageGroupID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "age group ID is required")
	}
	if jerseyNumber != nil && (*jerseyNumber < 1 || *jerseyNumber > 99) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "jersey number must be between 1 and 99")
	}
	return &Member{
		ID:           memberID,
		ApplicantID:  applicant.ID,
		GuardianID:   guardianID,
		AgeGroupID:   ageGroupID,
		FirstName:    applicant.FirstName,
		LastName:     applicant.LastName,
		DateOfBirth:  applicant.DateOfBirth,
		Sex:          applicant.Sex,
		Position:     position,
		JerseyNumber: jerseyNumber,
		CreatedAt:    now,
	}, nil
}
