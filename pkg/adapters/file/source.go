// Package file adapts the filesystem to the journeymap ports: journey
// documents in YAML or JSON act as a JourneySource, and a directory of
// JSON files acts as a JourneyStore with atomic writes.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Document is the on-disk journey document shape. Label and Page
// describe the root node; Journeys carries the detection output.
type Document struct {
	Label    string           `json:"label,omitempty" yaml:"label,omitempty"`
	Page     string           `json:"page,omitempty" yaml:"page,omitempty"`
	Journeys []domain.Journey `json:"journeys" yaml:"journeys"`
}

// LoadDocument reads a journey document from disk. The format follows
// the file extension: .json parses as JSON, everything else as YAML
// (which covers .yaml and .yml, and still accepts JSON content since
// YAML is a superset).
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journey document: %w", err)
	}

	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return &doc, nil
}

// Source implements ports.JourneySource over one journey document. The
// file is re-read on every call, so edits show up on the next snapshot
// without any watching machinery.
type Source struct {
	Path string
}

// NewSource creates a Source for the given document path.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Journeys loads the document and returns its journey list.
func (s *Source) Journeys(ctx context.Context) ([]domain.Journey, error) {
	doc, err := LoadDocument(s.Path)
	if err != nil {
		return nil, err
	}
	return doc.Journeys, nil
}
