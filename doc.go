/*
Package dfa loads deterministic finite automata from a plain text description
and classifies strings against them.

A description lists, one section per line, the start state, the states, the
alphabet, the accepting states and then one transition per line:

	# start state
	q0
	# states
	q0 q1
	# symbols
	a b
	# accepting states
	q1
	# transitions
	q0 a q1
	q1 b q1

Every string is classified as Accepted, Rejected or InvalidSymbol. A string
containing any character outside the alphabet is InvalidSymbol, whatever its
prefix; a string that reaches a (state, symbol) pair with no transition is
Rejected immediately.

# Usage

	eng := dfa.New()

	a, err := eng.LoadFile(ctx, "even.dfa")
	if err != nil {
		// err wraps a *domain.LoadError; errors.Is(err, domain.DuplicateTransition) etc.
		log.Fatal(err)
	}

	switch eng.Classify(ctx, a, "abba") {
	case domain.Accepted:
	case domain.Rejected:
	case domain.InvalidSymbol:
	}

Built automata are immutable and can be shared by any number of goroutines.
The Engine adds a named registry on top (memory, file or Redis backed), batch
classification and lifecycle hooks for logging and metrics.
*/
package dfa
