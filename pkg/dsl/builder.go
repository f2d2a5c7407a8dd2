package dsl

import (
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/schema"
)

// Builder manages the automaton construction.
type Builder struct {
	start    string
	order    []string
	states   map[string]*StateBuilder
	alphabet []string
	explicit bool
}

// New creates a builder whose start state is start. The start state is
// declared implicitly.
func New(start string) *Builder {
	b := &Builder{
		start:  start,
		states: make(map[string]*StateBuilder),
	}
	b.State(start)
	return b
}

// State declares a state, in order of first call.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, builder: b}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Alphabet fixes the symbol list. Symbols not used by any transition are kept.
func (b *Builder) Alphabet(symbols ...byte) *Builder {
	b.explicit = true
	b.alphabet = b.alphabet[:0]
	for _, c := range symbols {
		b.alphabet = append(b.alphabet, domain.Symbol(c).String())
	}
	return b
}

// Document returns the serializable form of what has been declared so far.
func (b *Builder) Document() schema.Document {
	doc := schema.Document{
		Start:       b.start,
		States:      append([]string(nil), b.order...),
		Accepting:   []string{},
		Transitions: []schema.Transition{},
	}

	seen := make(map[string]bool)
	symbols := []string{}
	if b.explicit {
		symbols = append(symbols, b.alphabet...)
		for _, s := range symbols {
			seen[s] = true
		}
	}

	for _, name := range b.order {
		sb := b.states[name]
		if sb.accepting {
			doc.Accepting = append(doc.Accepting, name)
		}
		for _, e := range sb.edges {
			if !b.explicit && !seen[e.Symbol] {
				seen[e.Symbol] = true
				symbols = append(symbols, e.Symbol)
			}
			doc.Transitions = append(doc.Transitions, e)
		}
	}
	doc.Symbols = symbols
	return doc
}

// Build validates the declarations and returns the automaton.
// Errors are the same *domain.LoadError values the text parser reports.
func (b *Builder) Build() (*domain.Automaton, error) {
	return b.Document().Build()
}

// MustBuild is Build for statically known automata; it panics on error.
func (b *Builder) MustBuild() *domain.Automaton {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}
