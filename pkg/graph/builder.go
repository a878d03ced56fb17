package graph

import (
	"sort"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Builder assembles a journey tree. The zero value is usable; options
// customize the synthetic root node.
type Builder struct {
	rootLabel string
	rootURL   string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithRootLabel overrides the root node's label.
func WithRootLabel(label string) BuilderOption {
	return func(b *Builder) {
		b.rootLabel = label
	}
}

// WithRootURL records the page URL on the root node.
func WithRootURL(url string) BuilderOption {
	return func(b *Builder) {
		b.rootURL = url
	}
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{rootLabel: domain.DefaultRootLabel}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build derives the rooted tree for the given journeys. Branches appear
// under the root in input order, one per journey, and each journey's
// steps hang off its branch as a linear chain ordered by Step.Order.
// Node IDs are deterministic, so equal input always yields an equal tree.
//
// Build never fails. Journeys without steps still contribute a branch; an
// empty journey list yields a graph of just the root with a single
// root-only path. Unique journey IDs are the caller's responsibility;
// duplicates propagate into duplicate node IDs (pkg/schema lints for this
// out of band).
func (b *Builder) Build(journeys []domain.Journey) *domain.Graph {
	root := &domain.Node{
		ID:    domain.RootNodeID,
		Kind:  domain.KindPage,
		Label: b.rootLabel,
		Page:  &domain.PageMeta{URL: b.rootURL},
	}

	for _, j := range journeys {
		root.Children = append(root.Children, buildBranch(j))
	}

	g := &domain.Graph{Root: root}
	g.Nodes = preorder(root)
	g.Paths = Paths(root)
	return g
}

// Build derives a journey tree with default root settings.
func Build(journeys []domain.Journey) *domain.Graph {
	return NewBuilder().Build(journeys)
}

// buildBranch turns one journey into its branch subtree: a branch root
// carrying the journey's confidence, followed by a linear step chain.
func buildBranch(j domain.Journey) *domain.Node {
	confidence := j.Confidence
	branch := &domain.Node{
		ID:    domain.BranchNodeID(j.ID),
		Kind:  domain.KindAction,
		Label: j.Name,
		Action: &domain.ActionMeta{
			JourneyID:  j.ID,
			Confidence: &confidence,
		},
	}

	steps := make([]domain.Step, len(j.Steps))
	copy(steps, j.Steps)
	sort.SliceStable(steps, func(a, b int) bool {
		return steps[a].Order < steps[b].Order
	})

	parent := branch
	for i, s := range steps {
		node := &domain.Node{
			ID:    domain.StepNodeID(j.ID, i+1),
			Kind:  domain.KindAction,
			Label: s.Description,
			Action: &domain.ActionMeta{
				JourneyID: j.ID,
				Step: &domain.StepMeta{
					Number:       i + 1,
					RequiresData: s.RequiresData,
					DataType:     s.DataType,
				},
			},
		}
		parent.Children = append(parent.Children, node)
		parent = node
	}
	return branch
}

// preorder flattens the tree into a pre-order node list using an explicit
// stack. Children are pushed right to left so the left subtree surfaces
// first, matching the recursive ordering without the recursion depth risk
// on long step chains.
func preorder(root *domain.Node) []*domain.Node {
	var nodes []*domain.Node
	stack := []*domain.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, n)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nodes
}
