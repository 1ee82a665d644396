// Package handler wires the admission HTTP endpoints to the admission
// service. The acting staff identity comes from the request context set by
// the gateway middleware; requests without one are rejected.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"touchline/internal/admission/models"
	"touchline/internal/admission/service"
	id "touchline/pkg/domain"
	dErrors "touchline/pkg/domain-errors"
	"touchline/pkg/platform/httputil"
	"touchline/pkg/requestcontext"
)

// Service defines the interface for admission operations.
type Service interface {
	AdvanceToReview(ctx context.Context, actor service.Actor, applicantID id.ApplicantID) (*models.Applicant, error)
	Reject(ctx context.Context, actor service.Actor, applicantID id.ApplicantID) (*service.RejectResult, error)
	Convert(ctx context.Context, actor service.Actor, applicantID id.ApplicantID, selection service.GuardianSelection, details service.MemberDetails, creds service.Credentials) (*service.ConvertResult, error)
	GetApplicant(ctx context.Context, actor service.Actor, applicantID id.ApplicantID) (*models.Applicant, error)
	ListApplicants(ctx context.Context, actor service.Actor, status *models.ApplicantStatus) ([]*models.Applicant, error)
	DeleteApplicant(ctx context.Context, actor service.Actor, applicantID id.ApplicantID) error
	ListAgeGroups(ctx context.Context, actor service.Actor) ([]*models.AgeGroup, error)
}

// Handler wires admission endpoints to the admission service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an admission handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts admission endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/age-groups", h.HandleListAgeGroups)
	r.Route("/admissions", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Route("/{applicantID}", func(r chi.Router) {
			r.Get("/", h.HandleGet)
			r.Delete("/", h.HandleDelete)
			r.Post("/review", h.HandleReview)
			r.Post("/reject", h.HandleReject)
			r.Post("/convert", h.HandleConvert)
		})
	})
}

// actorFrom pulls the acting staff identity from the request context.
func actorFrom(ctx context.Context) (service.Actor, error) {
	staffID := requestcontext.StaffID(ctx)
	if staffID.IsNil() {
		return service.Actor{}, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return service.Actor{ID: staffID, Role: requestcontext.StaffRole(ctx)}, nil
}

func applicantIDFrom(r *http.Request) (id.ApplicantID, error) {
	return id.ParseApplicantID(chi.URLParam(r, "applicantID"))
}

// HandleList handles GET /admissions requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := actorFrom(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var status *models.ApplicantStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := models.ParseApplicantStatus(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		status = &parsed
	}

	applicants, err := h.service.ListApplicants(ctx, actor, status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromApplicants(applicants))
}

// HandleListAgeGroups handles GET /age-groups requests.
func (h *Handler) HandleListAgeGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := actorFrom(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	groups, err := h.service.ListAgeGroups(ctx, actor)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromAgeGroups(groups))
}

// HandleGet handles GET /admissions/{applicantID} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := actorFrom(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	applicantID, err := applicantIDFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	applicant, err := h.service.GetApplicant(ctx, actor, applicantID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromApplicant(applicant))
}

// HandleDelete handles DELETE /admissions/{applicantID} requests.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, err := actorFrom(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	applicantID, err := applicantIDFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.DeleteApplicant(ctx, actor, applicantID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReview handles POST /admissions/{applicantID}/review requests.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	actor, err := actorFrom(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	applicantID, err := applicantIDFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	applicant, err := h.service.AdvanceToReview(ctx, actor, applicantID)
	if err != nil {
		h.logger.ErrorContext(ctx, "advance to review failed",
			"request_id", requestID,
			"applicant_id", applicantID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromApplicant(applicant))
}

// HandleReject handles POST /admissions/{applicantID}/reject requests.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	actor, err := actorFrom(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	applicantID, err := applicantIDFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Reject(ctx, actor, applicantID)
	if err != nil {
		h.logger.ErrorContext(ctx, "reject failed",
			"request_id", requestID,
			"applicant_id", applicantID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &RejectResponse{
		Applicant:       fromApplicant(result.Applicant),
		AlreadyRejected: result.AlreadyRejected,
	})
}

// HandleConvert handles POST /admissions/{applicantID}/convert requests.
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	actor, err := actorFrom(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	applicantID, err := applicantIDFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[ConvertRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Convert(ctx, actor, applicantID, req.ParsedSelection(), req.ParsedDetails(), req.ParsedCredentials())
	if err != nil {
		h.logger.ErrorContext(ctx, "conversion failed",
			"request_id", requestID,
			"applicant_id", applicantID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "conversion completed",
		"request_id", requestID,
		"applicant_id", applicantID.String(),
		"member_id", result.Member.ID.String(),
		"already_converted", result.AlreadyConverted,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	status := http.StatusCreated
	if result.AlreadyConverted {
		status = http.StatusOK
	}
	httputil.WriteJSON(w, status, FromConvertResult(result))
}
