package dsl

import (
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/schema"
)

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name      string
	accepting bool
	edges     []schema.Transition
	builder   *Builder
}

// Accepting marks the state as accepting.
func (s *StateBuilder) Accepting() *StateBuilder {
	s.accepting = true
	return s
}

// On adds the transition s --symbol--> target. The target state is declared
// if it does not exist yet.
func (s *StateBuilder) On(symbol byte, target string) *StateBuilder {
	s.builder.State(target)
	s.edges = append(s.edges, schema.Transition{From: s.name, Symbol: domain.Symbol(symbol).String(), To: target})
	return s
}

// OnAny adds one transition to target for every symbol in symbols.
func (s *StateBuilder) OnAny(symbols string, target string) *StateBuilder {
	for i := 0; i < len(symbols); i++ {
		s.On(symbols[i], target)
	}
	return s
}

// Name returns the state name.
func (s *StateBuilder) Name() string {
	return s.name
}
