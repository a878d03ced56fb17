package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Store implements ports.JourneyStore using the local filesystem.
// It stores journey sets as JSON files in a configured directory.
type Store struct {
	BasePath string
}

// NewStore creates a Store rooted at basePath. If basePath is empty, it
// defaults to ".journeymap/sets".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".journeymap", "sets")
	}
	return &Store{BasePath: basePath}
}

// Save persists the journey set to a JSON file atomically. It writes to
// a temporary file first, syncs via fsync, and then renames it into
// place.
func (s *Store) Save(ctx context.Context, name string, journeys []domain.Journey) error {
	if err := checkName(name); err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure set directory: %w", err)
	}

	destPath := filepath.Join(s.BasePath, name+".json")

	data, err := json.MarshalIndent(journeys, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journey set: %w", err)
	}

	// The temp file lives in the same directory so the rename stays on
	// one filesystem, which is what makes it atomic.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+name+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Close before rename; Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists, so clear it first.
	// The delete+rename window is acceptable against partial writes.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing set file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load retrieves a journey set from its JSON file.
func (s *Store) Load(ctx context.Context, name string) ([]domain.Journey, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.BasePath, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSetNotFound
		}
		return nil, fmt.Errorf("failed to read set file: %w", err)
	}

	var journeys []domain.Journey
	if err := json.Unmarshal(data, &journeys); err != nil {
		return nil, fmt.Errorf("failed to unmarshal journey set: %w", err)
	}
	return journeys, nil
}

// Delete removes the set file. Missing files are not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.BasePath, name+".json"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete set file: %w", err)
	}
	return nil
}

// List returns all stored set names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if strings.HasPrefix(entry.Name(), "tmp-") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return names, nil
}

// checkName rejects names that would escape the base directory.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("set name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid set name %q", name)
	}
	return nil
}
