package export

import "github.com/rinasm/journeymap/pkg/domain"

// Node is one entry in the generic visualization projection. The
// annotation payloads are carried over from the domain node verbatim.
type Node struct {
	ID     string             `json:"id"`
	Label  string             `json:"label"`
	Type   domain.NodeKind    `json:"type"`
	Page   *domain.PageMeta   `json:"page,omitempty"`
	Action *domain.ActionMeta `json:"action,omitempty"`
}

// Edge links a parent node to one of its children.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the flat node/edge projection consumed by third-party
// graph-visualization tooling.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Visualization flattens the tree into node and edge lists. Nodes keep
// the graph's pre-order; every non-root node contributes exactly one
// edge from its parent, so len(Edges) is always len(Nodes)-1.
func Visualization(g *domain.Graph) Graph {
	out := Graph{
		Nodes: make([]Node, 0, len(g.Nodes)),
		Edges: make([]Edge, 0, max(len(g.Nodes)-1, 0)),
	}
	for _, n := range g.Nodes {
		out.Nodes = append(out.Nodes, Node{
			ID:     n.ID,
			Label:  n.Label,
			Type:   n.Kind,
			Page:   n.Page,
			Action: n.Action,
		})
		for _, child := range n.Children {
			out.Edges = append(out.Edges, Edge{From: n.ID, To: child.ID})
		}
	}
	return out
}
