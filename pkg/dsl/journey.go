package dsl

import "github.com/rinasm/journeymap/pkg/domain"

// JourneyBuilder provides a fluent API for configuring a journey.
type JourneyBuilder struct {
	journey domain.Journey
	builder *Builder
}

// Name sets the human readable name of the journey.
func (j *JourneyBuilder) Name(name string) *JourneyBuilder {
	j.journey.Name = name
	return j
}

// Confidence sets the detection confidence score on a 0 to 100 scale.
func (j *JourneyBuilder) Confidence(score float64) *JourneyBuilder {
	j.journey.Confidence = score
	return j
}

// Step appends an action step. Order is assigned from the position in
// the chain, so steps come out in the order they were declared.
func (j *JourneyBuilder) Step(description string) *JourneyBuilder {
	j.journey.Steps = append(j.journey.Steps, domain.Step{
		Description: description,
		Order:       len(j.journey.Steps) + 1,
	})
	return j
}

// Input appends a step that captures user data of the given type
// (e.g. "text", "password").
func (j *JourneyBuilder) Input(description, dataType string) *JourneyBuilder {
	j.journey.Steps = append(j.journey.Steps, domain.Step{
		Description:  description,
		Order:        len(j.journey.Steps) + 1,
		RequiresData: true,
		DataType:     dataType,
	})
	return j
}

// Build returns the underlying domain.Journey.
// This is primarily used by the Builder, but exposed for advanced usage.
func (j *JourneyBuilder) Build() domain.Journey {
	return j.journey
}
