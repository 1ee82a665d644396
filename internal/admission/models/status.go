package models

import (
	dErrors "touchline/pkg/domain-errors"
)

// ApplicantStatus is the closed set of admission states. Transition legality
// lives in one table below; call sites never compare raw strings.
type ApplicantStatus string

const (
	StatusPending     ApplicantStatus = "PENDING"
	StatusUnderReview ApplicantStatus = "UNDER_REVIEW"
	StatusRejected    ApplicantStatus = "REJECTED"
	StatusConverted   ApplicantStatus = "CONVERTED"
)

// transitions is the single source of truth for legal status changes.
// PENDING may skip review and go straight to either terminal state.
var transitions = map[ApplicantStatus][]ApplicantStatus{
	StatusPending:     {StatusUnderReview, StatusRejected, StatusConverted},
	StatusUnderReview: {StatusRejected, StatusConverted},
	StatusRejected:    {},
	StatusConverted:   {},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s ApplicantStatus) CanTransitionTo(next ApplicantStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s admits no further transitions.
func (s ApplicantStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s ApplicantStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// PreConversionStatuses are the states from which a conversion may start.
// The store's conditional update guards on exactly this set.
func PreConversionStatuses() []ApplicantStatus {
	return []ApplicantStatus{StatusPending, StatusUnderReview}
}

// ParseApplicantStatus validates a raw status string from a trust boundary.
func ParseApplicantStatus(raw string) (ApplicantStatus, error) {
	s := ApplicantStatus(raw)
	if !s.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown applicant status %q", raw)
	}
	return s, nil
}
