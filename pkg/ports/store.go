package ports

import (
	"context"

	"github.com/rinasm/journeymap/pkg/domain"
)

// JourneyStore persists named journey sets. Stores hold detection input,
// never derived graphs; graphs are rebuilt from the input on demand.
type JourneyStore interface {
	// Save persists a journey set under the given name, replacing any
	// previous set with that name.
	Save(ctx context.Context, name string, journeys []domain.Journey) error

	// Load retrieves the journey set with the given name.
	// Returns domain.ErrSetNotFound if the set does not exist.
	Load(ctx context.Context, name string) ([]domain.Journey, error)

	// Delete removes the journey set with the given name. Deleting a
	// missing set is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored journey sets.
	List(ctx context.Context) ([]string, error)
}
