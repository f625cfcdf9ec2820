package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/termdialog/internal/script"
	"github.com/aretw0/termdialog/pkg/domain"
)

// endID is the synthetic node that options without a next node lead to.
const endID = "__end"

// Overlay contains playthrough data to highlight on the graph.
type Overlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// Mermaid produces a Mermaid flowchart of a dialogue script. Shapes:
// - Start node: ((Circle))
// - Node offering options: {Rhombus}
// - Node ending the dialogue: ([Stadium])
// Each option is an edge labelled with its plain text.
func Mermaid(s *script.Script, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	needsEnd := false
	for _, node := range s.Nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == s.Start:
			opener, closer = "((", "))"
		case len(node.Options) > 0:
			opener, closer = "{", "}"
		default:
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, node.ID, closer)

		for _, opt := range node.Options {
			to := endID
			if opt.Next != "" {
				to = sanitizeMermaidID(opt.Next)
			} else {
				needsEnd = true
			}
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, edgeLabel(opt), to)
		}
	}
	if needsEnd {
		fmt.Fprintf(&sb, "    %s(((\"end\")))\n", endID)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on light fills in either theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}
		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

// edgeLabel is the option's plain text with double quotes made safe for Mermaid.
func edgeLabel(opt domain.Option) string {
	return strings.ReplaceAll(domain.Plain(opt.Label), "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
