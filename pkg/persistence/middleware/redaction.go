package middleware

import (
	"context"
	"regexp"

	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/ports"
)

type redactionMiddleware struct {
	next     ports.JourneyStore
	patterns []*regexp.Regexp
}

// NewRedactionMiddleware creates a middleware that masks step descriptions
// and journey names matching the patterns before they are persisted.
// Detection layers sometimes capture literal user input ("Enter username
// jane@example.com"); this keeps such fragments out of the store.
func NewRedactionMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.JourneyStore) ports.JourneyStore {
		return &redactionMiddleware{next: next, patterns: patterns}
	}
}

func (m *redactionMiddleware) Save(ctx context.Context, name string, journeys []domain.Journey) error {
	// 1. Deep clone to avoid side effects on the working set used by the engine.
	cloned := cloneJourneys(journeys)

	// 2. Mask matches
	for i := range cloned {
		cloned[i].Name = mask(cloned[i].Name, m.patterns)
		for s := range cloned[i].Steps {
			cloned[i].Steps[s].Description = mask(cloned[i].Steps[s].Description, m.patterns)
		}
	}

	return m.next.Save(ctx, name, cloned)
}

func (m *redactionMiddleware) Load(ctx context.Context, name string) ([]domain.Journey, error) {
	return m.next.Load(ctx, name)
}

func (m *redactionMiddleware) Delete(ctx context.Context, name string) error {
	return m.next.Delete(ctx, name)
}

func (m *redactionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func cloneJourneys(journeys []domain.Journey) []domain.Journey {
	out := make([]domain.Journey, len(journeys))
	for i, j := range journeys {
		out[i] = j
		out[i].Steps = make([]domain.Step, len(j.Steps))
		copy(out[i].Steps, j.Steps)
	}
	return out
}

func mask(s string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, "***")
	}
	return s
}
