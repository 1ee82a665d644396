package applicant

import (
	"context"
	"sort"
	"sync"
	"time"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

// MemoryStore is an in-memory applicant store for development mode and
// handler tests. It mirrors the conditional-update semantics of the
// Postgres store, including ErrConflict on a lost status race.
type MemoryStore struct {
	mu         sync.RWMutex
	applicants map[id.ApplicantID]*models.Applicant
}

func NewMemory() *MemoryStore {
	return &MemoryStore{applicants: make(map[id.ApplicantID]*models.Applicant)}
}

func (s *MemoryStore) Create(_ context.Context, a *models.Applicant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applicants[a.ID]; ok {
		return sentinel.ErrConflict
	}
	s.applicants[a.ID] = cloneApplicant(a)
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, applicantID id.ApplicantID) (*models.Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applicants[applicantID]
	if !ok || a.IsDeleted() {
		return nil, sentinel.ErrNotFound
	}
	return cloneApplicant(a), nil
}

func (s *MemoryStore) List(_ context.Context, status *models.ApplicantStatus) ([]*models.Applicant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Applicant
	for _, a := range s.applicants {
		if a.IsDeleted() {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		out = append(out, cloneApplicant(a))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) TransitionStatus(_ context.Context, applicantID id.ApplicantID, from []models.ApplicantStatus, to models.ApplicantStatus, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applicants[applicantID]
	if !ok || a.IsDeleted() || !statusIn(a.Status, from) {
		return sentinel.ErrConflict
	}
	a.Status = to
	a.UpdatedAt = now
	return nil
}

func (s *MemoryStore) MarkConverted(_ context.Context, applicantID id.ApplicantID, memberID id.MemberID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applicants[applicantID]
	if !ok || a.IsDeleted() || !statusIn(a.Status, models.PreConversionStatuses()) {
		return sentinel.ErrConflict
	}
	a.ApplyConversion(memberID, now)
	return nil
}

func (s *MemoryStore) SoftDelete(_ context.Context, applicantID id.ApplicantID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applicants[applicantID]
	if !ok || a.IsDeleted() {
		return sentinel.ErrNotFound
	}
	t := now
	a.DeletedAt = &t
	a.UpdatedAt = now
	return nil
}

func statusIn(status models.ApplicantStatus, set []models.ApplicantStatus) bool {
	for _, s := range set {
		if status == s {
			return true
		}
	}
	return false
}

func cloneApplicant(a *models.Applicant) *models.Applicant {
	c := *a
	if a.MemberID != nil {
		mid := *a.MemberID
		c.MemberID = &mid
	}
	if a.DeletedAt != nil {
		t := *a.DeletedAt
		c.DeletedAt = &t
	}
	return &c
}
