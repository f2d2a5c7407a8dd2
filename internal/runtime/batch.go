package runtime

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/dfa/pkg/domain"
)

// Observer is notified of each classification made by ClassifyBatch.
// It is called from worker goroutines and must be safe for concurrent use.
type Observer func(r domain.Result, elapsed time.Duration)

// ClassifyBatch classifies inputs on at most workers goroutines and returns the
// results in input order. workers <= 0 means GOMAXPROCS. Cancellation is
// observed between strings; a single classification is never interrupted.
// observe may be nil.
func ClassifyBatch(ctx context.Context, a *domain.Automaton, inputs []string, workers int, observe Observer) ([]domain.Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]domain.Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			began := time.Now()
			results[i] = domain.Result{Input: in, Verdict: Classify(a, in)}
			if observe != nil {
				observe(results[i], time.Since(began))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
