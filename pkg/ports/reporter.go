package ports

import (
	"context"

	"github.com/aretw0/dfa/pkg/domain"
)

// Reporter presents classification outcomes. It owns all formatting.
type Reporter interface {
	Report(ctx context.Context, input string, verdict domain.Verdict) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, input string, verdict domain.Verdict) error

// Report calls f.
func (f ReporterFunc) Report(ctx context.Context, input string, verdict domain.Verdict) error {
	return f(ctx, input, verdict)
}
