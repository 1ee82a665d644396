package agegroup

import (
	"context"
	"sort"
	"sync"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

// MemoryStore is an in-memory age group catalog for development mode and
// tests. Seed groups via Put before use.
type MemoryStore struct {
	mu     sync.RWMutex
	groups map[id.AgeGroupID]*models.AgeGroup
}

func NewMemory() *MemoryStore {
	return &MemoryStore{groups: make(map[id.AgeGroupID]*models.AgeGroup)}
}

// Put seeds or replaces an age group.
func (s *MemoryStore) Put(g *models.AgeGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *g
	s.groups[g.ID] = &c
}

func (s *MemoryStore) FindByID(_ context.Context, ageGroupID id.AgeGroupID) (*models.AgeGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[ageGroupID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := *g
	return &c, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*models.AgeGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AgeGroup, 0, len(s.groups))
	for _, g := range s.groups {
		c := *g
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MinAge < out[j].MinAge })
	return out, nil
}
