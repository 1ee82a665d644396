package models

import (
	"time"

	id "touchline/pkg/domain"
)

// EnrollmentCompleted is published to the notification dispatcher after an
// applicant's terminal status is durably committed. Dispatch failures are
// logged and never affect the committed conversion.
type EnrollmentCompleted struct {
	ApplicantID id.ApplicantID `json:"applicant_id"`
	MemberID    id.MemberID    `json:"member_id"`
	GuardianID  id.GuardianID  `json:"guardian_id"`
	Outcome     string         `json:"outcome"`
	Timestamp   time.Time      `json:"timestamp"`
}
