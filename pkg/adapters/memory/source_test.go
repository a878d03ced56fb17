package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinasm/journeymap/pkg/domain"
)

func TestSourceJourneys(t *testing.T) {
	src := NewSource(
		domain.Journey{ID: "a", Name: "A", Confidence: 50},
		domain.Journey{ID: "b", Name: "B", Confidence: 60},
	)

	journeys, err := src.Journeys(context.Background())
	require.NoError(t, err)
	require.Len(t, journeys, 2)
	assert.Equal(t, "a", journeys[0].ID)

	// Returned slice is a copy.
	journeys[0].ID = "mutated"
	again, err := src.Journeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].ID)
}

func TestSourceWatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := NewSource()
	ch, err := src.Watch(ctx)
	require.NoError(t, err)

	src.Set([]domain.Journey{{ID: "new", Name: "New", Confidence: 70}})

	select {
	case _, ok := <-ch:
		require.True(t, ok, "expected a change signal, not a closed channel")
	case <-time.After(time.Second):
		t.Fatal("no change notification received")
	}

	journeys, err := src.Journeys(ctx)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, "new", journeys[0].ID)
}

func TestSourceWatchClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := NewSource()

	ch, err := src.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should close after cancel")
	case <-time.After(time.Second):
		t.Fatal("channel did not close after cancel")
	}

	// A Set after cancel must not panic on the removed watcher.
	src.Set(nil)
}

func TestSourceCoalescesSignals(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := NewSource()
	ch, err := src.Watch(ctx)
	require.NoError(t, err)

	// Multiple rapid sets collapse into at least one pending signal.
	src.Set(nil)
	src.Set(nil)
	src.Set(nil)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no signal after rapid sets")
	}
}
