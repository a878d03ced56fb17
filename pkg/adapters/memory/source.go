package memory

import (
	"context"
	"sync"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Source implements ports.JourneySource over a fixed in-memory journey
// list. Safe for concurrent use; Set swaps the list and pokes watchers.
type Source struct {
	mu       sync.RWMutex
	journeys []domain.Journey
	watchers []chan struct{}
}

// NewSource creates a Source seeded with the given journeys.
func NewSource(journeys ...domain.Journey) *Source {
	s := &Source{}
	s.journeys = cloneJourneys(journeys)
	return s
}

// Journeys returns a copy of the current journey list.
func (s *Source) Journeys(ctx context.Context) ([]domain.Journey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneJourneys(s.journeys), nil
}

// Set replaces the journey list and notifies watchers. Signals are
// non-blocking; a watcher that hasn't drained the previous one keeps a
// single pending notification, which is enough to trigger a rebuild.
func (s *Source) Set(journeys []domain.Journey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.journeys = cloneJourneys(journeys)
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Watch implements ports.Watchable. The channel closes when ctx ends.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()

	// Removal and close happen under the same lock as Set's sends, so a
	// signal can never race the close.
	go func() {
		<-ctx.Done()
		s.mu.Lock()
		for i, w := range s.watchers {
			if w == ch {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				break
			}
		}
		close(ch)
		s.mu.Unlock()
	}()

	return ch, nil
}

// cloneJourneys deep-copies a journey list so callers and the source
// never share step slices.
func cloneJourneys(journeys []domain.Journey) []domain.Journey {
	out := make([]domain.Journey, len(journeys))
	for i, j := range journeys {
		out[i] = j
		out[i].Steps = append([]domain.Step(nil), j.Steps...)
	}
	return out
}
