package domain

import "fmt"

const (
	// RootNodeID is the fixed ID of the synthetic page root.
	RootNodeID = "root"

	// DefaultRootLabel is the label given to the root when the source
	// page has no better name.
	DefaultRootLabel = "Current Page"
)

// BranchNodeID returns the deterministic ID of a journey's branch root.
// Branch nodes reuse the journey ID so re-building the same input yields
// the same graph.
func BranchNodeID(journeyID string) string {
	return journeyID
}

// StepNodeID returns the deterministic ID of the n-th step node of a
// journey, with n being 1-based.
func StepNodeID(journeyID string, n int) string {
	return fmt.Sprintf("%s-step-%d", journeyID, n)
}
