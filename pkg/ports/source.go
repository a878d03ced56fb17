package ports

import (
	"context"

	"github.com/rinasm/journeymap/pkg/domain"
)

// JourneySource is the boundary to the detection collaborator. The
// engine pulls the current journey list from it on every snapshot and
// treats the result as immutable input.
type JourneySource interface {
	// Journeys returns the detected journeys in detection order.
	Journeys(ctx context.Context) ([]domain.Journey, error)
}

// Watchable marks sources that can signal backend changes. This is
// typically used for live-rebuild behavior in the server and dev modes.
type Watchable interface {
	// Watch returns a channel that receives a signal whenever the
	// underlying journey set changes. It carries no event details,
	// only that a rebuild is warranted.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
