package schema

import (
	"fmt"

	"github.com/rinasm/journeymap/pkg/domain"
)

// ValidateStepData checks candidate input values against the data
// requirements a journey declares on its steps. Values are keyed by step
// node ID (see domain.StepNodeID). Steps that do not require data are
// ignored; steps that do must have a value of the declared type.
// All failures are reported together in an AggregateError.
func ValidateStepData(j domain.Journey, values map[string]any) error {
	var errs []error

	for i, s := range j.Steps {
		if !s.RequiresData {
			continue
		}
		key := domain.StepNodeID(j.ID, i+1)

		t, err := ForDataType(s.DataType)
		if err != nil {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: err.Error(),
			})
			continue
		}

		value, exists := values[key]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: fmt.Sprintf("required %s value missing", t.Name()),
			})
			continue
		}

		if err := t.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// LintJourneys checks the preconditions the graph builder documents but
// does not enforce: IDs must be present and unique, confidence scores
// must sit on the 0 to 100 scale, and declared data types must resolve.
// The build path stays validation-free; ingest boundaries and the
// validate command run this first.
func LintJourneys(journeys []domain.Journey) error {
	var errs []error
	seen := make(map[string]struct{}, len(journeys))

	for i, j := range journeys {
		key := j.ID
		if key == "" {
			key = fmt.Sprintf("journey[%d]", i)
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: domain.ErrEmptyJourneyID.Error(),
				Err:    domain.ErrEmptyJourneyID,
			})
		} else if _, dup := seen[key]; dup {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: domain.ErrDuplicateJourneyID.Error(),
				Err:    domain.ErrDuplicateJourneyID,
			})
		}
		seen[key] = struct{}{}

		if j.Confidence < 0 || j.Confidence > 100 {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: fmt.Sprintf("%s: %v", domain.ErrConfidenceOutOfRange.Error(), j.Confidence),
				Err:    domain.ErrConfidenceOutOfRange,
			})
		}

		for si, s := range j.Steps {
			if !s.RequiresData {
				continue
			}
			if _, err := ForDataType(s.DataType); err != nil {
				errs = append(errs, &ValidationError{
					Key:    fmt.Sprintf("%s.steps[%d]", key, si),
					Reason: err.Error(),
				})
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
