package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/aretw0/dfa/pkg/domain"
)

// JSONReporter emits each result as a single JSON line.
type JSONReporter struct {
	mu      sync.Mutex
	Encoder *json.Encoder
}

// NewJSONReporter creates a reporter writing to w (stdout if nil).
func NewJSONReporter(w io.Writer) *JSONReporter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONReporter{Encoder: json.NewEncoder(w)}
}

func (r *JSONReporter) Report(ctx context.Context, input string, verdict domain.Verdict) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Encoder.Encode(domain.Result{Input: input, Verdict: verdict})
}
