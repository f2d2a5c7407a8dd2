package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfa/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFromRun highlights the states a classification went through.
func OverlayFromRun(run domain.Run) *GraphOverlay {
	o := &GraphOverlay{VisitedStates: run.Path}
	if len(run.Path) > 0 {
		o.CurrentState = run.Path[len(run.Path)-1]
	}
	return o
}

// GenerateMermaid produces a Mermaid state diagram for a.
// Parallel transitions between the same pair of states share one edge whose
// label lists every symbol. Accepting states get an edge to the final marker
// and the "accepting" class.
func GenerateMermaid(a *domain.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	ids := stateIDs(a)
	byName := make(map[string]string, len(ids))
	for idx, s := range a.States() {
		byName[s.Name] = ids[idx]
		if ids[idx] != s.Name {
			fmt.Fprintf(&sb, "    state %q as %s\n", s.Name, ids[idx])
		}
	}

	fmt.Fprintf(&sb, "    [*] --> %s\n", ids[a.Start()])

	type edge struct{ from, to int }
	var order []edge
	labels := make(map[edge][]string)
	for from := 0; from < a.NumStates(); from++ {
		for sym, c := range a.Symbols() {
			to := a.Next(from, sym)
			if to == domain.NoTransition {
				continue
			}
			e := edge{from, to}
			if _, seen := labels[e]; !seen {
				order = append(order, e)
			}
			labels[e] = append(labels[e], escapeLabel(c.String()))
		}
	}
	for _, e := range order {
		fmt.Fprintf(&sb, "    %s --> %s : %s\n", ids[e.from], ids[e.to], strings.Join(labels[e], ", "))
	}

	var accepting []string
	for idx := range a.States() {
		if a.IsAccepting(idx) {
			fmt.Fprintf(&sb, "    %s --> [*]\n", ids[idx])
			accepting = append(accepting, ids[idx])
		}
	}
	if len(accepting) > 0 {
		sb.WriteString("\n    classDef accepting stroke-width:3px;\n")
		fmt.Fprintf(&sb, "    class %s accepting\n", strings.Join(accepting, ","))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, name := range overlay.VisitedStates {
			id, ok := byName[name]
			if !ok || visitedSet[id] || name == overlay.CurrentState {
				continue
			}
			visitedSet[id] = true
			fmt.Fprintf(&sb, "    class %s visited\n", id)
		}
		if id, ok := byName[overlay.CurrentState]; ok {
			fmt.Fprintf(&sb, "    class %s current\n", id)
		}
	}

	return sb.String()
}

// stateIDs assigns every state a unique Mermaid identifier.
func stateIDs(a *domain.Automaton) []string {
	ids := make([]string, a.NumStates())
	used := make(map[string]bool, len(ids))
	for idx, s := range a.States() {
		id := sanitizeMermaidID(s.Name)
		if used[id] {
			id = fmt.Sprintf("%s_%d", id, idx)
		}
		used[id] = true
		ids[idx] = id
	}
	return ids
}

func sanitizeMermaidID(id string) string {
	if id == "" {
		return "_"
	}
	var sb strings.Builder
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			sb.WriteByte(c)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func escapeLabel(s string) string {
	switch s {
	case ":":
		return "#58;"
	case ";":
		return "#59;"
	case "#":
		return "#35;"
	}
	return s
}
