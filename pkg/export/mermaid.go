package export

import (
	"fmt"
	"strings"

	"github.com/rinasm/journeymap/pkg/domain"
)

// Mermaid produces Mermaid flowchart syntax for the graph.
// It applies semantic styling:
// - Page root: ((Circle))
// - Step requiring data input: [/Parallelogram/]
// - Default action: [Rectangle]
// Journey branch nodes carry their confidence inside the label.
func Mermaid(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.Kind == domain.KindPage:
			opener, closer = "((", "))"
		case node.Action != nil && node.Action.Step != nil && node.Action.Step.RequiresData:
			opener, closer = "[/", "/]"
		}

		// Escape double quotes so labels cannot break out of the
		// Mermaid string literal.
		label := strings.ReplaceAll(node.Label, "\"", "'")
		if node.Action != nil && node.Action.Confidence != nil {
			label = fmt.Sprintf("%s <br/> %s", label, domain.FormatConfidence(*node.Action.Confidence))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))

		for _, child := range node.Children {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeMermaidID(child.ID)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
