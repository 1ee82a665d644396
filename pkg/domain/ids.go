// Package domain defines the typed identifiers shared across the academy
// modules. Wrapping uuid.UUID in distinct types makes cross-entity ID mixups
// a compile error instead of a data bug.
package domain

import (
	"github.com/google/uuid"

	dErrors "touchline/pkg/domain-errors"
)

type (
	// ApplicantID identifies a submitted admission applicant.
	ApplicantID uuid.UUID
	// GuardianID identifies a parent/guardian entity.
	GuardianID uuid.UUID
	// MemberID identifies an enrolled player.
	MemberID uuid.UUID
	// AgeGroupID identifies a pre-existing age classification.
	AgeGroupID uuid.UUID
	// StaffID identifies the acting staff user on an operation.
	StaffID uuid.UUID
	// LinkID identifies an account link row.
	LinkID uuid.UUID
)

// ExternalAccountID is the opaque identifier the identity provider assigns to
// an account. It is never parsed, only stored and echoed back.
type ExternalAccountID string

func (id ExternalAccountID) String() string { return string(id) }
func (id ExternalAccountID) IsEmpty() bool  { return id == "" }

func (id ApplicantID) String() string { return uuid.UUID(id).String() }
func (id ApplicantID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id GuardianID) String() string { return uuid.UUID(id).String() }
func (id GuardianID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id MemberID) String() string { return uuid.UUID(id).String() }
func (id MemberID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id AgeGroupID) String() string { return uuid.UUID(id).String() }
func (id AgeGroupID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id StaffID) String() string { return uuid.UUID(id).String() }
func (id StaffID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id LinkID) String() string { return uuid.UUID(id).String() }
func (id LinkID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// The wrapped uuid.UUID does not lend its methods to the defined types, so
// each ID implements encoding.TextMarshaler/TextUnmarshaler itself. Without
// these, JSON encoding would emit the raw 16-byte array.

func (id ApplicantID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *ApplicantID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = ApplicantID(u)
	return nil
}

func (id GuardianID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *GuardianID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = GuardianID(u)
	return nil
}

func (id MemberID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *MemberID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = MemberID(u)
	return nil
}

func (id AgeGroupID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *AgeGroupID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = AgeGroupID(u)
	return nil
}

func (id StaffID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *StaffID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = StaffID(u)
	return nil
}

func (id LinkID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *LinkID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = LinkID(u)
	return nil
}

// parseUUID enforces the shared invariant: IDs must be valid, non-nil UUIDs.
func parseUUID(raw, kind string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", kind)
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is not a valid UUID", kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s must not be the nil UUID", kind)
	}
	return u, nil
}

func ParseApplicantID(raw string) (ApplicantID, error) {
	u, err := parseUUID(raw, "applicant ID")
	return ApplicantID(u), err
}

func ParseGuardianID(raw string) (GuardianID, error) {
	u, err := parseUUID(raw, "guardian ID")
	return GuardianID(u), err
}

func ParseMemberID(raw string) (MemberID, error) {
	u, err := parseUUID(raw, "member ID")
	return MemberID(u), err
}

func ParseAgeGroupID(raw string) (AgeGroupID, error) {
	u, err := parseUUID(raw, "age group ID")
	return AgeGroupID(u), err
}

func ParseStaffID(raw string) (StaffID, error) {
	u, err := parseUUID(raw, "staff ID")
	return StaffID(u), err
}
