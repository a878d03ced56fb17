/*
Package schema validates the data requirements that journeys declare on
their steps.

A step marked RequiresData names a data type ("text", "email", "date", ...)
that describes what a user would have to enter at that point of the
journey. This package resolves those names to Type validators and checks
candidate values against them, so tooling can verify recorded or generated
input sets before replaying a journey.

It also hosts the journey lint: the graph builder deliberately does not
police journey IDs or confidence scores, so callers that ingest untrusted
journey documents run LintJourneys first.

# Usage

	t, err := schema.ForDataType("email")
	if err != nil { ... }
	if err := t.Validate("user@example.com"); err != nil { ... }

	// Validate a full value set against one journey's declared steps.
	err = schema.ValidateStepData(journey, map[string]any{
	    "login-step-1": "alice",
	    "login-step-2": "s3cret!",
	})

Validation failures aggregate into an AggregateError so callers can report
every problem at once instead of fixing them one by one.
*/
package schema
