package accountlink

import (
	"context"
	"sync"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
	"touchline/pkg/platform/sentinel"
)

type ownerKey struct {
	ownerType models.LinkOwnerType
	ownerID   string
}

// MemoryStore is an in-memory account link store for development mode and
// tests. It enforces the same one-link-per-owner and one-owner-per-account
// rules as the schema.
type MemoryStore struct {
	mu        sync.RWMutex
	byOwner   map[ownerKey]*models.AccountLink
	byAccount map[id.ExternalAccountID]ownerKey
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		byOwner:   make(map[ownerKey]*models.AccountLink),
		byAccount: make(map[id.ExternalAccountID]ownerKey),
	}
}

func (s *MemoryStore) Create(_ context.Context, link *models.AccountLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ownerKey{ownerType: link.OwnerType, ownerID: link.OwnerID}
	if _, ok := s.byOwner[key]; ok {
		return sentinel.ErrConflict
	}
	if _, ok := s.byAccount[link.AccountID]; ok {
		return sentinel.ErrConflict
	}
	c := *link
	s.byOwner[key] = &c
	s.byAccount[link.AccountID] = key
	return nil
}

func (s *MemoryStore) FindByOwner(_ context.Context, ownerType models.LinkOwnerType, ownerID string) (*models.AccountLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	link, ok := s.byOwner[ownerKey{ownerType: ownerType, ownerID: ownerID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	c := *link
	return &c, nil
}

func (s *MemoryStore) DeleteByOwner(_ context.Context, ownerType models.LinkOwnerType, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ownerKey{ownerType: ownerType, ownerID: ownerID}
	if link, ok := s.byOwner[key]; ok {
		delete(s.byAccount, link.AccountID)
		delete(s.byOwner, key)
	}
	return nil
}
