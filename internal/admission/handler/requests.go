package handler

import (
	"strings"

	"touchline/internal/admission/service"
	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
)

// ConvertRequest is the HTTP request body for POST /admissions/{id}/convert.
type ConvertRequest struct {
	Guardian    GuardianRequest    `json:"guardian"`
	Member      MemberRequest      `json:"member"`
	Credentials CredentialsRequest `json:"credentials"`

	// Parsed values (populated by Validate)
	parsedSelection service.GuardianSelection
	parsedDetails   service.MemberDetails
	parsedCreds     service.Credentials
}

// GuardianRequest chooses between reusing an existing guardian and creating
// a new one. Exactly one field must be set.
type GuardianRequest struct {
	ReuseExisting string              `json:"reuse_existing,omitempty"`
	CreateNew     *NewGuardianRequest `json:"create_new,omitempty"`
}

type NewGuardianRequest struct {
	ContactEmail string `json:"contact_email"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

type MemberRequest struct {
	AgeGroupID   string `json:"age_group_id"`
	Position     string `json:"position,omitempty"`
	JerseyNumber *int   `json:"jersey_number,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ConvertRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.Guardian.ReuseExisting = strings.TrimSpace(r.Guardian.ReuseExisting)
	switch {
	case r.Guardian.ReuseExisting == "" && r.Guardian.CreateNew == nil:
		return dErrors.New(dErrors.CodeValidation, "guardian.reuse_existing or guardian.create_new is required")
	case r.Guardian.ReuseExisting != "" && r.Guardian.CreateNew != nil:
		return dErrors.New(dErrors.CodeValidation, "guardian.reuse_existing and guardian.create_new are mutually exclusive")
	case r.Guardian.ReuseExisting != "":
		guardianID, err := id.ParseGuardianID(r.Guardian.ReuseExisting)
		if err != nil {
			return err
		}
		r.parsedSelection = service.GuardianSelection{ReuseExisting: &guardianID}
	default:
		create := r.Guardian.CreateNew
		create.ContactEmail = strings.TrimSpace(create.ContactEmail)
		if create.ContactEmail == "" {
			return dErrors.New(dErrors.CodeValidation, "guardian.create_new.contact_email is required")
		}
		if create.Password == "" {
			return dErrors.New(dErrors.CodeValidation, "guardian.create_new.password is required")
		}
		r.parsedSelection = service.GuardianSelection{CreateNew: &service.NewGuardian{
			ContactEmail: create.ContactEmail,
			RawPassword:  create.Password,
			FirstName:    strings.TrimSpace(create.FirstName),
			LastName:     strings.TrimSpace(create.LastName),
			Phone:        strings.TrimSpace(create.Phone),
		}}
	}

	ageGroupID, err := id.ParseAgeGroupID(strings.TrimSpace(r.Member.AgeGroupID))
	if err != nil {
		return err
	}
	r.parsedDetails = service.MemberDetails{
		AgeGroupID:   ageGroupID,
		Position:     strings.TrimSpace(r.Member.Position),
		JerseyNumber: r.Member.JerseyNumber,
	}

	r.Credentials.Username = strings.TrimSpace(r.Credentials.Username)
	if r.Credentials.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "credentials.username is required")
	}
	if r.Credentials.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "credentials.password is required")
	}
	r.parsedCreds = service.Credentials{
		Username:    r.Credentials.Username,
		RawPassword: r.Credentials.Password,
	}
	return nil
}

// ParsedSelection returns the validated guardian selection.
func (r *ConvertRequest) ParsedSelection() service.GuardianSelection {
	return r.parsedSelection
}

// ParsedDetails returns the validated member placement details.
func (r *ConvertRequest) ParsedDetails() service.MemberDetails {
	return r.parsedDetails
}

// ParsedCredentials returns the validated member credentials.
func (r *ConvertRequest) ParsedCredentials() service.Credentials {
	return r.parsedCreds
}
