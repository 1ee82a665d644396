package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "touchline/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
//
// Justification: This is a pure function enforcing a domain invariant
// at trust boundaries.
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseApplicantID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseApplicantID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseApplicantID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		applicantID, err := ParseApplicantID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, ApplicantID(validUUID), applicantID)
	})
}

// TestParseID_TrustBoundaryInputs validates parsing rejects hostile or
// malformed input at API entry points.
func TestParseID_TrustBoundaryInputs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE applicants;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Empty string", "", true},
		{"Nil UUID", uuid.Nil.String(), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStaffID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestTypeDistinction verifies the compiler enforces type safety.
// This is a compile-time check - if this compiles, the invariant holds.
func TestTypeDistinction(t *testing.T) {
	applicantID := ApplicantID(uuid.New())
	memberID := MemberID(uuid.New())

	// These would fail to compile if types were interchangeable:
	// var _ ApplicantID = memberID   // compile error
	// var _ MemberID = applicantID   // compile error

	// Verify they're distinct at runtime too
	assert.NotEqual(t, uuid.UUID(applicantID), uuid.UUID(memberID))
}

// TestIDJSONEncoding pins the wire format: typed IDs serialize as UUID
// strings, not as raw byte arrays.
func TestIDJSONEncoding(t *testing.T) {
	applicantID := ApplicantID(uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"))

	data, err := json.Marshal(applicantID)
	require.NoError(t, err)
	assert.Equal(t, `"550e8400-e29b-41d4-a716-446655440000"`, string(data))

	var decoded ApplicantID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, applicantID, decoded)

	var bad ApplicantID
	assert.Error(t, json.Unmarshal([]byte(`"not-a-uuid"`), &bad))
}

func TestExternalAccountID(t *testing.T) {
	assert.True(t, ExternalAccountID("").IsEmpty())
	assert.False(t, ExternalAccountID("acct_123").IsEmpty())
	assert.Equal(t, "acct_123", ExternalAccountID("acct_123").String())
}
