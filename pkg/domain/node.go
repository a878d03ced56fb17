package domain

import "strconv"

// NodeKind discriminates the two node variants in a journey graph.
type NodeKind string

const (
	// KindPage marks the synthetic root node representing the current page.
	KindPage NodeKind = "page"
	// KindAction marks every derived node: journey branch roots and steps.
	KindAction NodeKind = "action"
)

// PageMeta carries the page-specific attributes of a KindPage node.
type PageMeta struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// StepMeta carries the step-specific attributes of a step node.
// Number is 1-based and reflects the position after ordering, not the
// raw Order value from the source journey.
type StepMeta struct {
	Number       int    `json:"number" yaml:"number"`
	RequiresData bool   `json:"requiresData,omitempty" yaml:"requiresData,omitempty"`
	DataType     string `json:"dataType,omitempty" yaml:"dataType,omitempty"`
}

// ActionMeta carries the journey provenance of a KindAction node. Confidence
// is set on journey branch roots only; Step is set on step nodes only.
type ActionMeta struct {
	JourneyID  string    `json:"journeyId" yaml:"journeyId"`
	Confidence *float64  `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Step       *StepMeta `json:"step,omitempty" yaml:"step,omitempty"`
}

// Node is a vertex in the derived journey tree. Exactly one of Page or
// Action is non-nil, selected by Kind.
type Node struct {
	ID       string      `json:"id" yaml:"id"`
	Kind     NodeKind    `json:"kind" yaml:"kind"`
	Label    string      `json:"label" yaml:"label"`
	Children []*Node     `json:"children,omitempty" yaml:"children,omitempty"`
	Page     *PageMeta   `json:"page,omitempty" yaml:"page,omitempty"`
	Action   *ActionMeta `json:"action,omitempty" yaml:"action,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// FormatConfidence renders a 0 to 100 confidence score as a percentage,
// dropping the fraction when it is integral: 92 becomes "92%" and 92.5
// becomes "92.5%".
func FormatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64) + "%"
}

// IsRoot reports whether the node is the synthetic page root.
func (n *Node) IsRoot() bool {
	return n.Kind == KindPage
}
