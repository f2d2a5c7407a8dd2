package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfa/pkg/domain"
)

// Describe renders a as a Markdown document: a summary of its declarations
// followed by the full state by symbol transition table, where "?" marks an
// undefined transition.
func Describe(a *domain.Automaton) string {
	var sb strings.Builder

	sb.WriteString("# Automaton\n\n")
	fmt.Fprintf(&sb, "- **Start state:** %s\n", code(a.StartState().Name))
	fmt.Fprintf(&sb, "- **Accepting states:** %s\n", codeList(a.Accepting()))

	names := make([]string, 0, a.NumStates())
	for _, s := range a.States() {
		names = append(names, s.Name)
	}
	fmt.Fprintf(&sb, "- **States:** %s\n", codeList(names))

	symbols := make([]string, 0, a.NumSymbols())
	for _, c := range a.Symbols() {
		symbols = append(symbols, c.String())
	}
	fmt.Fprintf(&sb, "- **Symbols:** %s\n", codeList(symbols))

	complete := "partial"
	if a.IsComplete() {
		complete = "complete"
	}
	fmt.Fprintf(&sb, "- **Transition table:** %s\n", complete)

	if a.NumSymbols() == 0 {
		return sb.String()
	}

	sb.WriteString("\n## Transitions\n\n")
	sb.WriteString("| state |")
	for _, c := range symbols {
		fmt.Fprintf(&sb, " %s |", code(c))
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(symbols)))
	sb.WriteString("\n")

	for from, s := range a.States() {
		label := code(s.Name)
		if from == a.Start() {
			label = "→ " + label
		}
		if s.Accepting {
			label = "**" + label + "**"
		}
		fmt.Fprintf(&sb, "| %s |", label)
		for sym := range symbols {
			to := a.Next(from, sym)
			if to == domain.NoTransition {
				sb.WriteString(" ? |")
				continue
			}
			fmt.Fprintf(&sb, " %s |", code(a.State(to).Name))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// DescribeRun renders the outcome of classifying input.
func DescribeRun(input string, run domain.Run) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", code(input))
	fmt.Fprintf(&sb, "- **Verdict:** %s\n", run.Verdict)

	switch {
	case run.Offending >= 0:
		fmt.Fprintf(&sb, "- **Wrong symbol:** %s at position %d\n", code(input[run.Offending:run.Offending+1]), run.Offending)
	case run.Stuck >= 0:
		fmt.Fprintf(&sb, "- **Stuck:** no transition on %s at position %d\n", code(input[run.Stuck:run.Stuck+1]), run.Stuck)
	}
	if len(run.Path) > 0 {
		steps := make([]string, len(run.Path))
		for i, name := range run.Path {
			steps[i] = code(name)
		}
		fmt.Fprintf(&sb, "- **Path:** %s\n", strings.Join(steps, " → "))
	}
	return sb.String()
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "_none_"
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = code(s)
	}
	return strings.Join(out, " ")
}

// code wraps s in a code span that survives backticks and table pipes.
func code(s string) string {
	if s == "" {
		return "_empty_"
	}
	s = strings.ReplaceAll(s, "|", "\\|")
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}
