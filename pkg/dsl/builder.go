package dsl

import (
	"github.com/rinasm/journeymap/pkg/adapters/memory"
	"github.com/rinasm/journeymap/pkg/domain"
)

// Builder manages the journey set construction.
type Builder struct {
	order    []*JourneyBuilder
	journeys map[string]*JourneyBuilder
}

// New creates a new journey set builder.
func New() *Builder {
	return &Builder{
		journeys: make(map[string]*JourneyBuilder),
	}
}

// Journey creates a new journey in the set.
// If the journey already exists, it returns the existing builder.
func (b *Builder) Journey(id string) *JourneyBuilder {
	if jb, ok := b.journeys[id]; ok {
		return jb
	}
	jb := &JourneyBuilder{
		journey: domain.Journey{
			ID: id,
		},
		builder: b,
	}
	b.journeys[id] = jb
	b.order = append(b.order, jb)
	return jb
}

// Build compiles the set into domain journeys, in declaration order.
// Declaration order matters: it is the order branches attach to the root.
func (b *Builder) Build() []domain.Journey {
	journeys := make([]domain.Journey, 0, len(b.order))
	for _, jb := range b.order {
		journeys = append(journeys, jb.Build())
	}
	return journeys
}

// Source compiles the set into an in-memory journey source.
func (b *Builder) Source() *memory.Source {
	return memory.NewSource(b.Build()...)
}
