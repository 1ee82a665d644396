package models

import (
	"time"

	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
)

// LinkOwnerType names the kind of domain row an account link belongs to.
type LinkOwnerType string

const (
	OwnerGuardian LinkOwnerType = "guardian"
	OwnerMember   LinkOwnerType = "member"
)

func (t LinkOwnerType) IsValid() bool {
	return t == OwnerGuardian || t == OwnerMember
}

// AccountLink associates a domain row with its external identity account.
//
// Invariants:
//   - One link per owner (unique on owner_type + owner_id)
//   - One owner per external account (unique on account_id)
//   - Created in the same relational transaction as its owner row
type AccountLink struct {
	ID        id.LinkID            `json:"id"`
	OwnerType LinkOwnerType        `json:"owner_type"`
	OwnerID   string               `json:"owner_id"`
	AccountID id.ExternalAccountID `json:"account_id"`
	CreatedAt time.Time            `json:"created_at"`
}

func NewGuardianLink(linkID id.LinkID, guardianID id.GuardianID, accountID id.ExternalAccountID, now time.Time) (*AccountLink, error) {
	return newLink(linkID, OwnerGuardian, guardianID.String(), accountID, now)
}

func NewMemberLink(linkID id.LinkID, memberID id.MemberID, accountID id.ExternalAccountID, now time.Time) (*AccountLink, error) {
	return newLink(linkID, OwnerMember, memberID.String(), accountID, now)
}

func newLink(linkID id.LinkID, ownerType LinkOwnerType, ownerID string, accountID id.ExternalAccountID, now time.Time) (*AccountLink, error) {
	if accountID.IsEmpty() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "account link requires an external account ID")
	}
	return &AccountLink{
		ID:        linkID,
		OwnerType: ownerType,
		OwnerID:   ownerID,
		AccountID: accountID,
		CreatedAt: now,
	}, nil
}
