// Package dto normalizes loose journey payloads at ingest boundaries.
// HTTP bodies and MCP tool arguments both surface as generic maps;
// mapstructure turns them into typed payloads without a re-marshal
// round trip, and missing IDs get UUIDs assigned before the journeys
// reach a store.
package dto

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/rinasm/journeymap/pkg/domain"
)

// JourneyPayload mirrors the wire shape of one detected journey.
type JourneyPayload struct {
	ID         string        `json:"id" mapstructure:"id"`
	Name       string        `json:"name" mapstructure:"name"`
	Confidence float64       `json:"confidence" mapstructure:"confidence"`
	Steps      []StepPayload `json:"steps" mapstructure:"steps"`
}

// StepPayload mirrors the wire shape of one journey step.
type StepPayload struct {
	Description  string `json:"description" mapstructure:"description"`
	Order        int    `json:"order" mapstructure:"order"`
	RequiresData bool   `json:"requiresData" mapstructure:"requiresData"`
	DataType     string `json:"dataType" mapstructure:"dataType"`
}

// ToDomain converts the payload into a domain journey.
func (p JourneyPayload) ToDomain() domain.Journey {
	steps := make([]domain.Step, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = domain.Step{
			Description:  s.Description,
			Order:        s.Order,
			RequiresData: s.RequiresData,
			DataType:     s.DataType,
		}
	}
	return domain.Journey{
		ID:         p.ID,
		Name:       p.Name,
		Confidence: p.Confidence,
		Steps:      steps,
	}
}

// DecodeJourneys converts a loose value (typically []any of maps, as
// produced by JSON or tool-call decoding) into domain journeys.
func DecodeJourneys(v any) ([]domain.Journey, error) {
	var payloads []JourneyPayload
	if err := mapstructure.Decode(v, &payloads); err != nil {
		return nil, fmt.Errorf("failed to decode journeys: %w", err)
	}

	journeys := make([]domain.Journey, len(payloads))
	for i, p := range payloads {
		journeys[i] = p.ToDomain()
	}
	return journeys, nil
}

// AssignIDs fills empty journey IDs with fresh UUIDs, in place. It
// returns how many IDs were assigned.
func AssignIDs(journeys []domain.Journey) int {
	assigned := 0
	for i := range journeys {
		if journeys[i].ID == "" {
			journeys[i].ID = uuid.NewString()
			assigned++
		}
	}
	return assigned
}
