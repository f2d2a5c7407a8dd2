package memory

import (
	"context"
	"strings"

	"github.com/aretw0/dfa/pkg/adapters/file"
)

// Source implements ports.LineSource over in-memory text.
type Source struct {
	text string
}

// NewSource creates a line source from raw text. Comments and empty lines are
// filtered exactly as for files.
func NewSource(text string) *Source {
	return &Source{text: text}
}

// NewSourceFromLines creates a line source from already separated lines.
func NewSourceFromLines(lines ...string) *Source {
	return &Source{text: strings.Join(lines, "\n")}
}

// Lines returns the significant lines.
func (s *Source) Lines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return file.Scan(strings.NewReader(s.text))
}
