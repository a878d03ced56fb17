package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/ports"
)

func TestStoreContract(t *testing.T) {
	ports.RunJourneyStoreContract(t, NewStore())
}

func TestStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	journeys := []domain.Journey{{
		ID:         "a",
		Name:       "A",
		Confidence: 50,
		Steps:      []domain.Step{{Description: "original", Order: 1}},
	}}
	require.NoError(t, store.Save(ctx, "set", journeys))

	// Mutating the caller's slice must not leak into the store.
	journeys[0].Steps[0].Description = "mutated"

	loaded, err := store.Load(ctx, "set")
	require.NoError(t, err)
	assert.Equal(t, "original", loaded[0].Steps[0].Description)

	// Mutating a loaded copy must not leak either.
	loaded[0].Steps[0].Description = "mutated again"
	reloaded, err := store.Load(ctx, "set")
	require.NoError(t, err)
	assert.Equal(t, "original", reloaded[0].Steps[0].Description)
}
