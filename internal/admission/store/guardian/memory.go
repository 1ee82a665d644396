package guardian

import (
	"context"
	"sync"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

// MemoryStore is an in-memory guardian store for development mode and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	guardians map[id.GuardianID]*models.Guardian
}

func NewMemory() *MemoryStore {
	return &MemoryStore{guardians: make(map[id.GuardianID]*models.Guardian)}
}

func (s *MemoryStore) Create(_ context.Context, g *models.Guardian) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guardians[g.ID]; ok {
		return sentinel.ErrConflict
	}
	c := *g
	s.guardians[g.ID] = &c
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, guardianID id.GuardianID) (*models.Guardian, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.guardians[guardianID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := *g
	return &c, nil
}

func (s *MemoryStore) Delete(_ context.Context, guardianID id.GuardianID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guardians, guardianID)
	return nil
}
