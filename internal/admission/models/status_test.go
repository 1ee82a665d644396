package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "touchline/pkg/domain-errors"
)

// TestStatusTransitionTable pins the legal state machine: terminal states
// admit nothing, and PENDING may skip review into either terminal state.
func TestStatusTransitionTable(t *testing.T) {
	tests := []struct {
		from    ApplicantStatus
		to      ApplicantStatus
		allowed bool
	}{
		{StatusPending, StatusUnderReview, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusConverted, true},
		{StatusPending, StatusPending, false},

		{StatusUnderReview, StatusRejected, true},
		{StatusUnderReview, StatusConverted, true},
		{StatusUnderReview, StatusPending, false},
		{StatusUnderReview, StatusUnderReview, false},

		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusUnderReview, false},
		{StatusRejected, StatusConverted, false},

		{StatusConverted, StatusPending, false},
		{StatusConverted, StatusUnderReview, false},
		{StatusConverted, StatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusUnderReview.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusConverted.IsTerminal())
}

func TestPreConversionStatuses(t *testing.T) {
	for _, s := range PreConversionStatuses() {
		assert.True(t, s.CanTransitionTo(StatusConverted), "%s must admit conversion", s)
	}
	for _, s := range []ApplicantStatus{StatusRejected, StatusConverted} {
		assert.NotContains(t, PreConversionStatuses(), s)
	}
}

func TestParseApplicantStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		for _, raw := range []string{"PENDING", "UNDER_REVIEW", "REJECTED", "CONVERTED"} {
			s, err := ParseApplicantStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, ApplicantStatus(raw), s)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := ParseApplicantStatus("APPROVED")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects lowercase", func(t *testing.T) {
		_, err := ParseApplicantStatus("pending")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
