package ports

import "context"

// AutomatonStore persists automaton descriptions by name.
// Descriptions are stored raw; compiling them is the caller's concern.
type AutomatonStore interface {
	// Save stores (or replaces) the description for name.
	Save(ctx context.Context, name string, description string) error

	// Load retrieves the description for name.
	// Returns domain.ErrAutomatonNotFound if it does not exist.
	Load(ctx context.Context, name string) (string, error)

	// Delete removes name. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)
}
