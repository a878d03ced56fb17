package memory

import (
	"context"
	"sync"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Store implements ports.JourneyStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]domain.Journey
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]domain.Journey),
	}
}

// Save persists the journey set in memory.
func (s *Store) Save(ctx context.Context, name string, journeys []domain.Journey) error {
	// Deep copy to ensure isolation, similar to serialization.
	copied := cloneJourneys(journeys)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load retrieves the journey set from memory.
func (s *Store) Load(ctx context.Context, name string) ([]domain.Journey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	journeys, ok := s.data[name]
	if !ok {
		return nil, domain.ErrSetNotFound
	}

	// Copy on read so the caller can't mutate stored data by pointer.
	return cloneJourneys(journeys), nil
}

// Delete removes the journey set.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored set names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}
