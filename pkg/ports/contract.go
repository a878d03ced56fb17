package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinasm/journeymap/pkg/domain"
)

// RunJourneyStoreContract runs a suite of tests to verify that a
// JourneyStore implementation adheres to the defined interface contract.
func RunJourneyStoreContract(t *testing.T, store JourneyStore) {
	ctx := context.Background()
	setName := "contract-test-set-" + time.Now().Format("20060102150405")

	journeys := []domain.Journey{
		{
			ID:         "login",
			Name:       "User Login",
			Confidence: 92,
			Steps: []domain.Step{
				{Description: "Enter username", Order: 1, RequiresData: true, DataType: "text"},
				{Description: "Click submit", Order: 2},
			},
		},
		{ID: "search", Name: "Product Search", Confidence: 75.5},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, setName, journeys)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, setName)
		require.NoError(t, err, "Load should not return error")
		require.Len(t, loaded, 2)
		assert.Equal(t, "login", loaded[0].ID)
		assert.Equal(t, float64(92), loaded[0].Confidence)
		require.Len(t, loaded[0].Steps, 2)
		assert.Equal(t, "Enter username", loaded[0].Steps[0].Description)
		assert.True(t, loaded[0].Steps[0].RequiresData)
		assert.Equal(t, 75.5, loaded[1].Confidence)
		assert.Empty(t, loaded[1].Steps)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		err := store.Save(ctx, setName, journeys[:1])
		require.NoError(t, err)

		loaded, err := store.Load(ctx, setName)
		require.NoError(t, err)
		assert.Len(t, loaded, 1)

		// Restore the full set for the remaining subtests.
		require.NoError(t, store.Save(ctx, setName, journeys))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+setName)
		assert.ErrorIs(t, err, domain.ErrSetNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, setName, journeys)
		require.NoError(t, err)

		err = store.Delete(ctx, setName)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, setName)
		assert.ErrorIs(t, err, domain.ErrSetNotFound, "Load after Delete should return ErrSetNotFound")

		// Deleting a missing set stays quiet.
		assert.NoError(t, store.Delete(ctx, setName))
	})

	t.Run("List", func(t *testing.T) {
		id1 := setName + "-1"
		id2 := setName + "-2"
		require.NoError(t, store.Save(ctx, id1, journeys))
		require.NoError(t, store.Save(ctx, id2, journeys[:1]))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sets, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sets, id1)
		assert.Contains(t, sets, id2)
	})

	t.Run("Save Empty Set", func(t *testing.T) {
		empty := setName + "-empty"
		require.NoError(t, store.Save(ctx, empty, nil))
		defer func() { _ = store.Delete(ctx, empty) }()

		loaded, err := store.Load(ctx, empty)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}
