package models

import (
	"time"

	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
)

// Guardian is a parent/guardian entity. It may pre-exist (reused across
// siblings) or be created fresh during an enrollment conversion.
//
// Invariants:
//   - Email is non-empty
//   - A guardian has at most one external identity account; the account
//     identifier, once set, is immutable (enforced by the account_links
//     uniqueness constraint and by there being no setter here)
type Guardian struct {
	ID        id.GuardianID `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func NewGuardian(guardianID id.GuardianID, firstName, lastName, email, phone string, now time.Time) (*Guardian, error) {
	if email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "guardian email cannot be empty")
	}
	if firstName == "" || lastName == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "guardian name cannot be empty")
	}
	return &Guardian{
		ID:        guardianID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
