// Package validator reports structural weaknesses of a valid automaton:
// things that build fine but are usually mistakes.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/dfa/pkg/domain"
)

// Kind classifies a finding.
type Kind string

const (
	// Unreachable states cannot be entered from the start state.
	Unreachable Kind = "unreachable"
	// Dead states cannot lead to any accepting state.
	Dead Kind = "dead"
	// NoAccepting means the automaton accepts nothing at all.
	NoAccepting Kind = "no_accepting"
	// Undefined counts missing (state, symbol) transitions.
	Undefined Kind = "undefined"
)

// Finding is a single lint result.
type Finding struct {
	Kind   Kind
	States []string
	Count  int
}

func (f Finding) String() string {
	switch f.Kind {
	case Unreachable:
		return fmt.Sprintf("unreachable from start: %s", strings.Join(f.States, " "))
	case Dead:
		return fmt.Sprintf("cannot reach an accepting state: %s", strings.Join(f.States, " "))
	case NoAccepting:
		return "no accepting states: every string is rejected"
	case Undefined:
		return fmt.Sprintf("%d undefined transitions (strings reaching them are rejected)", f.Count)
	}
	return string(f.Kind)
}

// Lint checks a and returns its findings, in a stable order.
func Lint(a *domain.Automaton) []Finding {
	var findings []Finding

	reachable := crawl(a, []int{a.Start()}, func(from int, visit func(int)) {
		for sym := 0; sym < a.NumSymbols(); sym++ {
			if to := a.Next(from, sym); to != domain.NoTransition {
				visit(to)
			}
		}
	})
	if names := missing(a, reachable); len(names) > 0 {
		findings = append(findings, Finding{Kind: Unreachable, States: names})
	}

	var accepting []int
	for idx := 0; idx < a.NumStates(); idx++ {
		if a.IsAccepting(idx) {
			accepting = append(accepting, idx)
		}
	}
	if len(accepting) == 0 {
		return append(findings, Finding{Kind: NoAccepting})
	}

	// Crawl the reversed table from the accepting states.
	reverse := make([][]int, a.NumStates())
	undefined := 0
	for from := 0; from < a.NumStates(); from++ {
		for sym := 0; sym < a.NumSymbols(); sym++ {
			to := a.Next(from, sym)
			if to == domain.NoTransition {
				undefined++
				continue
			}
			reverse[to] = append(reverse[to], from)
		}
	}
	live := crawl(a, accepting, func(to int, visit func(int)) {
		for _, from := range reverse[to] {
			visit(from)
		}
	})
	if names := missing(a, live); len(names) > 0 {
		findings = append(findings, Finding{Kind: Dead, States: names})
	}

	if undefined > 0 {
		findings = append(findings, Finding{Kind: Undefined, Count: undefined})
	}
	return findings
}

// crawl runs a breadth-first search from roots and returns the visited set.
func crawl(a *domain.Automaton, roots []int, next func(int, func(int))) []bool {
	visited := make([]bool, a.NumStates())
	queue := append([]int(nil), roots...)
	for _, r := range roots {
		visited[r] = true
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		next(current, func(n int) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		})
	}
	return visited
}

func missing(a *domain.Automaton, visited []bool) []string {
	var names []string
	for idx, ok := range visited {
		if !ok {
			names = append(names, a.State(idx).Name)
		}
	}
	return names
}
