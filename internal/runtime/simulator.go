// Package runtime simulates a built automaton over input strings.
//
// Classification runs in two phases: the whole input is checked against the
// alphabet first, so a malformed string is reported as InvalidSymbol even if a
// prefix of it would already have been rejected; only then is the string
// consumed from the start state. The automaton is only read, so any number of
// classifications may run concurrently on the same value.
package runtime

import "github.com/aretw0/dfa/pkg/domain"

// Classify returns the verdict of a for input.
func Classify(a *domain.Automaton, input string) domain.Verdict {
	for i := 0; i < len(input); i++ {
		if !a.InAlphabet(input[i]) {
			return domain.InvalidSymbol
		}
	}

	state := a.Start()
	for i := 0; i < len(input); i++ {
		sym, _ := a.SymbolIndex(input[i])
		next := a.Next(state, sym)
		if next == domain.NoTransition {
			return domain.Rejected
		}
		state = next
	}

	if a.IsAccepting(state) {
		return domain.Accepted
	}
	return domain.Rejected
}

// Trace classifies input like Classify and records how it got there.
func Trace(a *domain.Automaton, input string) domain.Run {
	run := domain.Run{Stuck: -1, Offending: -1}
	for i := 0; i < len(input); i++ {
		if !a.InAlphabet(input[i]) {
			run.Verdict = domain.InvalidSymbol
			run.Offending = i
			return run
		}
	}

	state := a.Start()
	run.Path = append(make([]string, 0, len(input)+1), a.State(state).Name)
	for i := 0; i < len(input); i++ {
		sym, _ := a.SymbolIndex(input[i])
		next := a.Next(state, sym)
		if next == domain.NoTransition {
			run.Verdict = domain.Rejected
			run.Stuck = i
			return run
		}
		state = next
		run.Path = append(run.Path, a.State(state).Name)
	}

	if a.IsAccepting(state) {
		run.Verdict = domain.Accepted
	} else {
		run.Verdict = domain.Rejected
	}
	return run
}
