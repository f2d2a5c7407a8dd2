package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"

	"github.com/aretw0/dfa/pkg/domain"
)

// TextReporter prints one line per verdict.
// Prefixes are coloured when the writer is a terminal that supports it.
type TextReporter struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewTextReporter creates a reporter writing to w (stdout if nil).
func NewTextReporter(w io.Writer, opts ...termenv.OutputOption) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	return &TextReporter{out: termenv.NewOutput(w, opts...)}
}

func (r *TextReporter) Report(ctx context.Context, input string, verdict domain.Verdict) error {
	var prefix, color string
	switch verdict {
	case domain.Accepted:
		prefix, color = "ACCEPTED LINE ", "#22c55e"
	case domain.Rejected:
		prefix, color = "REJECTED LINE ", "#ef4444"
	case domain.InvalidSymbol:
		prefix, color = "WRONG SYMBOL: ", "#eab308"
	default:
		return fmt.Errorf("unknown verdict %d for %q", int(verdict), input)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	styled := r.out.String(prefix).Foreground(r.out.Color(color)).Bold()
	_, err := fmt.Fprintf(r.out, "%s%s\n", styled, input)
	return err
}
