package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
)

func validApplicant(t *testing.T) *Applicant {
	t.Helper()
	a, err := NewApplicant(
		id.ApplicantID(uuid.New()),
		"Maya", "Okafor", "maya@example.com",
		time.Date(2014, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return a
}

func TestNewApplicant(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		a := validApplicant(t)
		assert.Equal(t, StatusPending, a.Status)
		assert.Nil(t, a.MemberID)
		assert.Nil(t, a.DeletedAt)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewApplicant(id.ApplicantID(uuid.New()), "", "Okafor", "maya@example.com",
			time.Date(2014, 6, 2, 0, 0, 0, 0, time.UTC), time.Now())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewApplicant(id.ApplicantID(uuid.New()), "Maya", "Okafor", "",
			time.Date(2014, 6, 2, 0, 0, 0, 0, time.UTC), time.Now())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("rejects future date of birth", func(t *testing.T) {
		now := time.Now()
		_, err := NewApplicant(id.ApplicantID(uuid.New()), "Maya", "Okafor", "maya@example.com",
			now.Add(24*time.Hour), now)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func TestApplicantTransitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("review then reject", func(t *testing.T) {
		a := validApplicant(t)
		require.NoError(t, a.CanAdvanceToReview())
		a.ApplyReview(now)
		assert.Equal(t, StatusUnderReview, a.Status)

		require.NoError(t, a.CanReject())
		a.ApplyRejection(now)
		assert.Equal(t, StatusRejected, a.Status)
	})

	t.Run("rejected admits nothing further", func(t *testing.T) {
		a := validApplicant(t)
		a.ApplyRejection(now)

		assert.True(t, dErrors.HasCode(a.CanAdvanceToReview(), dErrors.CodeInvalidTransition))
		assert.True(t, dErrors.HasCode(a.CanConvert(), dErrors.CodeInvalidTransition))
	})

	t.Run("conversion links member", func(t *testing.T) {
		a := validApplicant(t)
		require.NoError(t, a.CanConvert())

		memberID := id.MemberID(uuid.New())
		a.ApplyConversion(memberID, now)
		assert.Equal(t, StatusConverted, a.Status)
		require.NotNil(t, a.MemberID)
		assert.Equal(t, memberID, *a.MemberID)

		assert.True(t, dErrors.HasCode(a.CanConvert(), dErrors.CodeInvalidTransition))
	})
}

func TestNewMemberFromApplicant(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	guardianID := id.GuardianID(uuid.New())
	ageGroupID := id.AgeGroupID(uuid.New())

	t.Run("freezes applicant fields", func(t *testing.T) {
		a := validApplicant(t)
		a.Sex = "F"
		jersey := 10

		m, err := NewMemberFromApplicant(id.MemberID(uuid.New()), a, guardianID, ageGroupID, "midfielder", &jersey, now)
		require.NoError(t, err)
		assert.Equal(t, a.ID, m.ApplicantID)
		assert.Equal(t, a.FirstName, m.FirstName)
		assert.Equal(t, a.LastName, m.LastName)
		assert.Equal(t, a.Sex, m.Sex)
		assert.True(t, a.DateOfBirth.Equal(m.DateOfBirth))
		assert.Equal(t, "midfielder", m.Position)
		require.NotNil(t, m.JerseyNumber)
		assert.Equal(t, 10, *m.JerseyNumber)

		// Later applicant edits never reach the member.
		a.FirstName = "Renamed"
		assert.Equal(t, "Maya", m.FirstName)
	})

	t.Run("rejects out-of-range jersey numbers", func(t *testing.T) {
		a := validApplicant(t)
		for _, jersey := range []int{0, -1, 100, 120} {
			j := jersey
			_, err := NewMemberFromApplicant(id.MemberID(uuid.New()), a, guardianID, ageGroupID, "", &j, now)
			require.Error(t, err, "jersey %d", jersey)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		}
	})

	t.Run("jersey number is optional", func(t *testing.T) {
		a := validApplicant(t)
		m, err := NewMemberFromApplicant(id.MemberID(uuid.New()), a, guardianID, ageGroupID, "", nil, now)
		require.NoError(t, err)
		assert.Nil(t, m.JerseyNumber)
	})

	t.Run("requires guardian and age group", func(t *testing.T) {
		a := validApplicant(t)
		_, err := NewMemberFromApplicant(id.MemberID(uuid.New()), a, id.GuardianID{}, ageGroupID, "", nil, now)
		require.Error(t, err)

		_, err = NewMemberFromApplicant(id.MemberID(uuid.New()), a, guardianID, id.AgeGroupID{}, "", nil, now)
		require.Error(t, err)
	})
}
