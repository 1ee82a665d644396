package handler

import (
	"time"

	"touchline/internal/admission/models"
	"touchline/internal/admission/service"
)

// ApplicantResponse is the HTTP shape of an applicant.
type ApplicantResponse struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	DateOfBirth       time.Time `json:"date_of_birth"`
	Sex               string    `json:"sex,omitempty"`
	GuardianName      string    `json:"guardian_name,omitempty"`
	GuardianEmail     string    `json:"guardian_email,omitempty"`
	GuardianPhone     string    `json:"guardian_phone,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	PreferredPosition string    `json:"preferred_position,omitempty"`
	Status            string    `json:"status"`
	MemberID          string    `json:"member_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func fromApplicant(a *models.Applicant) *ApplicantResponse {
	resp := &ApplicantResponse{
		ID:                a.ID.String(),
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Email:             a.Email,
		Phone:             a.Phone,
		DateOfBirth:       a.DateOfBirth,
		Sex:               a.Sex,
		GuardianName:      a.GuardianName,
		GuardianEmail:     a.GuardianEmail,
		GuardianPhone:     a.GuardianPhone,
		Notes:             a.Notes,
		PreferredPosition: a.PreferredPosition,
		Status:            string(a.Status),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.MemberID != nil {
		resp.MemberID = a.MemberID.String()
	}
	return resp
}

// ListApplicantsResponse is the HTTP response for GET /admissions.
type ListApplicantsResponse struct {
	Applicants []*ApplicantResponse `json:"applicants"`
}

func fromApplicants(applicants []*models.Applicant) *ListApplicantsResponse {
	out := &ListApplicantsResponse{Applicants: make([]*ApplicantResponse, 0, len(applicants))}
	for _, a := range applicants {
		out.Applicants = append(out.Applicants, fromApplicant(a))
	}
	return out
}

// AgeGroupResponse is the HTTP shape of an age classification.
type AgeGroupResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	MinAge int    `json:"min_age"`
	MaxAge int    `json:"max_age"`
}

// ListAgeGroupsResponse is the HTTP response for GET /age-groups.
type ListAgeGroupsResponse struct {
	AgeGroups []*AgeGroupResponse `json:"age_groups"`
}

func fromAgeGroups(groups []*models.AgeGroup) *ListAgeGroupsResponse {
	out := &ListAgeGroupsResponse{AgeGroups: make([]*AgeGroupResponse, 0, len(groups))}
	for _, g := range groups {
		out.AgeGroups = append(out.AgeGroups, &AgeGroupResponse{
			ID:     g.ID.String(),
			Name:   g.Name,
			MinAge: g.MinAge,
			MaxAge: g.MaxAge,
		})
	}
	return out
}

// RejectResponse is the HTTP response for POST /admissions/{id}/reject.
type RejectResponse struct {
	Applicant       *ApplicantResponse `json:"applicant"`
	AlreadyRejected bool               `json:"already_rejected"`
}

// MemberResponse is the HTTP shape of an enrolled member.
type MemberResponse struct {
	ID           string    `json:"id"`
	ApplicantID  string    `json:"applicant_id"`
	GuardianID   string    `json:"guardian_id"`
	AgeGroupID   string    `json:"age_group_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	Sex          string    `json:"sex,omitempty"`
	Position     string    `json:"position,omitempty"`
	JerseyNumber *int      `json:"jersey_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func fromMember(m *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:           m.ID.String(),
		ApplicantID:  m.ApplicantID.String(),
		GuardianID:   m.GuardianID.String(),
		AgeGroupID:   m.AgeGroupID.String(),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		DateOfBirth:  m.DateOfBirth,
		Sex:          m.Sex,
		Position:     m.Position,
		JerseyNumber: m.JerseyNumber,
		CreatedAt:    m.CreatedAt,
	}
}

// ConvertResponse is the HTTP response for POST /admissions/{id}/convert.
type ConvertResponse struct {
	Applicant        *ApplicantResponse `json:"applicant"`
	Member           *MemberResponse    `json:"member"`
	GuardianID       string             `json:"guardian_id"`
	AlreadyConverted bool               `json:"already_converted"`
}

// FromConvertResult converts a domain ConvertResult to an HTTP response.
func FromConvertResult(result *service.ConvertResult) *ConvertResponse {
	return &ConvertResponse{
		Applicant:        fromApplicant(result.Applicant),
		Member:           fromMember(result.Member),
		GuardianID:       result.GuardianID.String(),
		AlreadyConverted: result.AlreadyConverted,
	}
}
