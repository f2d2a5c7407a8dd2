package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/pkg/adapters/file"
	"github.com/aretw0/dfa/pkg/ports"
	"github.com/aretw0/dfa/pkg/runner"
)

// SessionOptions configures a classification session.
type SessionOptions struct {
	AutomatonPath string
	StringsPath   string
	JSON          bool
	Color         bool
	Summary       bool
}

// LoadFailure marks an automaton that could not be loaded.
type LoadFailure struct {
	Err error
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("Could not load automaton: %v", e.Err)
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// RunSession loads the automaton, classifies every line of the strings file
// and writes the verdicts to stdout.
func RunSession(ctx context.Context, eng *dfa.Engine, opts SessionOptions, stdout io.Writer) (runner.Summary, error) {
	a, err := eng.LoadFile(ctx, opts.AutomatonPath)
	if err != nil {
		return runner.Summary{}, &LoadFailure{Err: err}
	}

	var rep ports.Reporter
	if opts.JSON {
		rep = runner.NewJSONReporter(stdout)
	} else if opts.Color {
		rep = runner.NewTextReporter(stdout)
	} else {
		rep = runner.NewTextReporter(stdout, termenv.WithProfile(termenv.Ascii))
	}

	summary, err := runner.Run(ctx, eng, a, file.NewSource(opts.StringsPath), rep)
	if err != nil {
		return summary, err
	}

	if opts.Summary && !opts.JSON {
		fmt.Fprintf(stdout, "%d strings: %d accepted, %d rejected, %d wrong symbol\n",
			summary.Total, summary.Accepted, summary.Rejected, summary.InvalidSymbol)
	}
	return summary, nil
}
