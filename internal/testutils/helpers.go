package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/pkg/compiler"
	"github.com/aretw0/dfa/pkg/domain"
)

// EndsInB accepts the strings over {a,b} that end in b.
const EndsInB = `# start state
q0
# states
q0 q1
# symbols
a b
# accepting states
q1
# transitions
q0 a q0
q0 b q1
q1 a q0
q1 b q1
`

// EvenA accepts the strings over {a,b} with an even number of a's.
// The table is partial: odd has no transition on b.
const EvenA = `even
even odd
a b
even
even a odd
even b even
odd a even
`

// MustParse builds an automaton from description text.
// It fails the test immediately on error.
func MustParse(t *testing.T, description string) *domain.Automaton {
	t.Helper()
	a, err := compiler.ParseString(description)
	require.NoError(t, err, "Failed to build automaton")
	return a
}

// WriteFile writes content to name inside a temporary directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write fixture")
	return path
}
