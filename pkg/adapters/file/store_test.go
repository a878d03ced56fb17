package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinasm/journeymap/pkg/domain"
	"github.com/rinasm/journeymap/pkg/ports"
)

func TestStoreContract(t *testing.T) {
	ports.RunJourneyStoreContract(t, NewStore(t.TempDir()))
}

func TestStoreRejectsUnsafeNames(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		if err := store.Save(ctx, name, nil); err == nil {
			t.Errorf("Save(%q) = nil error, want error", name)
		}
		if _, err := store.Load(ctx, name); err == nil {
			t.Errorf("Load(%q) = nil error, want error", name)
		}
	}
}

func TestStoreListSkipsStrays(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "real", []domain.Journey{{ID: "a", Name: "A", Confidence: 50}}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-real-123.json"), []byte("{}"), 0644))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"real"}, names)
}

func TestStoreDefaultPath(t *testing.T) {
	store := NewStore("")
	assert.Equal(t, filepath.Join(".journeymap", "sets"), store.BasePath)
}
