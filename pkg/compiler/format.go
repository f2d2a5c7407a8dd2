package compiler

import (
	"io"
	"strings"

	"github.com/aretw0/dfa/pkg/domain"
)

// Format returns the canonical description of a.
func Format(a *domain.Automaton) string {
	var sb strings.Builder
	_ = Write(&sb, a)
	return sb.String()
}

// Write writes the canonical description of a to w.
func Write(w io.Writer, a *domain.Automaton) error {
	states := a.States()
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.Name
	}
	symbols := a.Symbols()
	syms := make([]string, len(symbols))
	for i, s := range symbols {
		syms[i] = s.String()
	}

	var sb strings.Builder
	section := func(comment, line string) {
		sb.WriteString("# " + comment + "\n")
		sb.WriteString(guard(line) + "\n")
	}

	section("start state", a.StartState().Name)
	section("states", strings.Join(names, " "))
	section("symbols", strings.Join(syms, " "))
	section("accepting states", strings.Join(a.Accepting(), " "))

	sb.WriteString("# transitions\n")
	for _, t := range a.Transitions() {
		sb.WriteString(guard(t.From+" "+t.Symbol.String()+" "+t.To) + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// guard keeps a line significant for the reader: an empty line would be
// dropped and a leading '#' would read as a comment. Leading whitespace is
// ignored by the builder.
func guard(line string) string {
	if line == "" || line[0] == '#' {
		return " " + line
	}
	return line
}
