package export

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/rinasm/journeymap/pkg/domain"
)

const dotGraphName = "journeymap"

// DOT renders the graph in Graphviz DOT syntax. Shapes mirror the
// Mermaid projection: ellipse for the page root, parallelogram for steps
// requiring data input, box for everything else.
func DOT(g *domain.Graph) (string, error) {
	dg := gographviz.NewGraph()
	if err := dg.SetName(dotGraphName); err != nil {
		return "", fmt.Errorf("failed to name DOT graph: %w", err)
	}
	if err := dg.SetDir(true); err != nil {
		return "", fmt.Errorf("failed to mark DOT graph directed: %w", err)
	}

	for _, node := range g.Nodes {
		attrs := map[string]string{
			"label": strconv.Quote(dotLabel(node)),
			"shape": dotShape(node),
		}
		if err := dg.AddNode(dotGraphName, strconv.Quote(node.ID), attrs); err != nil {
			return "", fmt.Errorf("failed to add DOT node %q: %w", node.ID, err)
		}
	}
	for _, node := range g.Nodes {
		for _, child := range node.Children {
			if err := dg.AddEdge(strconv.Quote(node.ID), strconv.Quote(child.ID), true, nil); err != nil {
				return "", fmt.Errorf("failed to add DOT edge %s->%s: %w", node.ID, child.ID, err)
			}
		}
	}
	return dg.String(), nil
}

func dotLabel(n *domain.Node) string {
	if n.Action != nil && n.Action.Confidence != nil {
		return fmt.Sprintf("%s\n%s", n.Label, domain.FormatConfidence(*n.Action.Confidence))
	}
	return n.Label
}

func dotShape(n *domain.Node) string {
	switch {
	case n.Kind == domain.KindPage:
		return "ellipse"
	case n.Action != nil && n.Action.Step != nil && n.Action.Step.RequiresData:
		return "parallelogram"
	default:
		return "box"
	}
}
