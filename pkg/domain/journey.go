package domain

// Step is a single action inside a journey. Order is the position the
// detection layer assigned to the step; the builder sorts by it, so gaps
// and unordered input are tolerated.
type Step struct {
	Description  string `json:"description" yaml:"description"`
	Order        int    `json:"order" yaml:"order"`
	RequiresData bool   `json:"requiresData,omitempty" yaml:"requiresData,omitempty"`
	DataType     string `json:"dataType,omitempty" yaml:"dataType,omitempty"`
}

// Journey is an externally detected sequence of user actions on a page.
// Confidence is the detector's score on a 0 to 100 scale; it is carried
// through to the derived graph untouched.
type Journey struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Steps      []Step  `json:"steps" yaml:"steps"`
}

// HasSteps reports whether the journey carries at least one step.
// Journeys without steps still produce a branch node in the graph.
func (j Journey) HasSteps() bool {
	return len(j.Steps) > 0
}
