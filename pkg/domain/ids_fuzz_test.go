//go:build go1.18

package domain

import (
	"testing"
)

// FuzzParseApplicantID tests that parsing never panics on arbitrary input
// and always returns either a valid ID or an error.
func FuzzParseApplicantID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		applicantID, err := ParseApplicantID(input)
		if err != nil {
			return
		}
		// A valid ID must round-trip through its string form.
		roundTrip, err2 := ParseApplicantID(applicantID.String())
		if err2 != nil {
			t.Errorf("valid ID failed round-trip: %v", err2)
		}
		if roundTrip != applicantID {
			t.Error("round-trip changed ID value")
		}
	})
}

// FuzzParseAllIDs ensures all ID types validate consistently: an input either
// parses for every type or for none.
func FuzzParseAllIDs(f *testing.F) {
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("")
	f.Add("invalid")

	f.Fuzz(func(t *testing.T, input string) {
		_, errApplicant := ParseApplicantID(input)
		_, errGuardian := ParseGuardianID(input)
		_, errMember := ParseMemberID(input)
		_, errAgeGroup := ParseAgeGroupID(input)
		_, errStaff := ParseStaffID(input)

		ok := errApplicant == nil
		for _, err := range []error{errGuardian, errMember, errAgeGroup, errStaff} {
			if (err == nil) != ok {
				t.Errorf("inconsistent validation across ID types for input %q", input)
			}
		}
	})
}
