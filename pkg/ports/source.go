package ports

import "context"

// LineSource supplies the significant lines of a text input in order.
// Empty lines and lines starting with '#' are never returned.
type LineSource interface {
	Lines(ctx context.Context) ([]string, error)
}
