package member

import (
	"context"
	"sync"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

// MemoryStore is an in-memory member store for development mode and tests.
// Like the members table it rejects a second member for the same applicant.
type MemoryStore struct {
	mu          sync.RWMutex
	members     map[id.MemberID]*models.Member
	byApplicant map[id.ApplicantID]id.MemberID
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		members:     make(map[id.MemberID]*models.Member),
		byApplicant: make(map[id.ApplicantID]id.MemberID),
	}
}

func (s *MemoryStore) Create(_ context.Context, m *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[m.ID]; ok {
		return sentinel.ErrConflict
	}
	if _, ok := s.byApplicant[m.ApplicantID]; ok {
		return sentinel.ErrConflict
	}
	c := cloneMember(m)
	s.members[m.ID] = c
	s.byApplicant[m.ApplicantID] = m.ID
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, memberID id.MemberID) (*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[memberID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return cloneMember(m), nil
}

func (s *MemoryStore) FindByApplicant(_ context.Context, applicantID id.ApplicantID) (*models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	memberID, ok := s.byApplicant[applicantID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return cloneMember(s.members[memberID]), nil
}

func cloneMember(m *models.Member) *models.Member {
	c := *m
	if m.JerseyNumber != nil {
		n := *m.JerseyNumber
		c.JerseyNumber = &n
	}
	return &c
}
