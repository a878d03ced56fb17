package domain

import "errors"

// Sentinel errors for journey validation. The build path itself never
// fails; duplicate or missing IDs are a caller precondition there. These
// are returned by the out-of-band lint in pkg/schema and by ingest
// boundaries, wrapped with journey context, so match with errors.Is.
var (
	// ErrEmptyJourneyID flags a journey that arrived without an ID.
	// IDs seed the deterministic node ID scheme.
	ErrEmptyJourneyID = errors.New("journey id is empty")

	// ErrDuplicateJourneyID flags two journeys sharing an ID, which
	// would collide in the derived node ID space.
	ErrDuplicateJourneyID = errors.New("duplicate journey id")

	// ErrConfidenceOutOfRange flags a confidence score outside the
	// 0 to 100 scale.
	ErrConfidenceOutOfRange = errors.New("confidence out of range")
)

// ErrSetNotFound is returned by journey stores when the named journey
// set does not exist.
var ErrSetNotFound = errors.New("journey set not found")
