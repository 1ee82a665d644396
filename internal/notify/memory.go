package notify

import (
	"context"
	"sync"

	"touchline/internal/admission/models"
)

// MemorySink collects enrollment events in memory for development mode and
// tests.
type MemorySink struct {
	mu     sync.Mutex
	events []models.EnrollmentCompleted

	// FailPublish makes Publish return this error, for publisher tests.
	FailPublish error
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Publish(_ context.Context, event models.EnrollmentCompleted) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPublish != nil {
		return s.FailPublish
	}
	s.events = append(s.events, event)
	return nil
}

func (s *MemorySink) Events() []models.EnrollmentCompleted {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.EnrollmentCompleted, len(s.events))
	copy(out, s.events)
	return out
}
