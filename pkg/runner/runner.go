package runner

import (
	"context"
	"fmt"

	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
)

// Classifier classifies a batch of strings, keeping input order.
// *dfa.Engine satisfies it.
type Classifier interface {
	ClassifyAll(ctx context.Context, a *domain.Automaton, inputs []string) ([]domain.Result, error)
}

// Summary counts the verdicts of a run.
type Summary struct {
	Total         int `json:"total"`
	Accepted      int `json:"accepted"`
	Rejected      int `json:"rejected"`
	InvalidSymbol int `json:"invalid_symbol"`
}

func (s *Summary) add(v domain.Verdict) {
	s.Total++
	switch v {
	case domain.Accepted:
		s.Accepted++
	case domain.Rejected:
		s.Rejected++
	case domain.InvalidSymbol:
		s.InvalidSymbol++
	}
}

// Run classifies every line of src against a and reports the results in
// source order. Nothing is reported if reading or classifying fails.
func Run(ctx context.Context, c Classifier, a *domain.Automaton, src ports.LineSource, rep ports.Reporter) (Summary, error) {
	var summary Summary

	lines, err := src.Lines(ctx)
	if err != nil {
		return summary, err
	}

	results, err := c.ClassifyAll(ctx, a, lines)
	if err != nil {
		return summary, fmt.Errorf("classification interrupted: %w", err)
	}

	for _, r := range results {
		if err := rep.Report(ctx, r.Input, r.Verdict); err != nil {
			return summary, fmt.Errorf("failed to report %q: %w", r.Input, err)
		}
		summary.add(r.Verdict)
	}
	return summary, nil
}
