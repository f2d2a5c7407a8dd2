package compiler_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/pkg/compiler"
	"github.com/aretw0/dfa/pkg/domain"
)

const scenario = `# start
q0
# states
q0 q1
# symbols
a b
# accepting
q1
# transitions
q0 a q1
q1 b q1
`

func TestParse_Scenario(t *testing.T) {
	a, err := compiler.ParseString(scenario)
	require.NoError(t, err)

	assert.Equal(t, "q0", a.StartState().Name)
	assert.Equal(t, 2, a.NumStates())
	assert.Equal(t, []domain.Symbol{'a', 'b'}, a.Symbols())
	assert.Equal(t, []string{"q1"}, a.Accepting())
	assert.Len(t, a.Transitions(), 2)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		kind   domain.ErrorKind
		tokens []string
		line   int
	}{
		{
			name: "Empty Input",
			kind: domain.MissingStartState,
		},
		{
			name:  "Missing State List",
			lines: []string{"q0"},
			kind:  domain.MissingStateList,
		},
		{
			name:   "Unknown Start State",
			lines:  []string{"q9", "q0 q1", "a", "q0"},
			kind:   domain.UnknownStartState,
			tokens: []string{"q9"},
			line:   2,
		},
		{
			name:   "Unknown Start State Reported Before Missing Symbols",
			lines:  []string{"q9", "q0 q1"},
			kind:   domain.UnknownStartState,
			tokens: []string{"q9"},
			line:   2,
		},
		{
			name:   "Duplicate State",
			lines:  []string{"q0", "q0 q1 q0", "a", "q0"},
			kind:   domain.DuplicateState,
			tokens: []string{"q0"},
			line:   2,
		},
		{
			name:  "Missing Symbol List",
			lines: []string{"q0", "q0 q1"},
			kind:  domain.MissingSymbolList,
		},
		{
			name:   "Duplicate Symbol",
			lines:  []string{"q0", "q0 q1", "a b a", "q1"},
			kind:   domain.DuplicateSymbol,
			tokens: []string{"a"},
			line:   3,
		},
		{
			name:   "Duplicate Symbol Through Multi Character Token",
			lines:  []string{"q0", "q0 q1", "a abc", "q1"},
			kind:   domain.DuplicateSymbol,
			tokens: []string{"a"},
			line:   3,
		},
		{
			name:  "Missing Finish List",
			lines: []string{"q0", "q0 q1", "a b"},
			kind:  domain.MissingFinishList,
		},
		{
			name:   "Unknown Finish State",
			lines:  []string{"q0", "q0 q1", "a b", "q9"},
			kind:   domain.UnknownFinishState,
			tokens: []string{"q9"},
			line:   4,
		},
		{
			name:   "Duplicate Finish State",
			lines:  []string{"q0", "q0 q1", "a b", "q1 q1"},
			kind:   domain.DuplicateFinishState,
			tokens: []string{"q1"},
			line:   4,
		},
		{
			name:   "Invalid Transition Symbol",
			lines:  []string{"q0", "q0 q1", "a b", "q1", "q0 c q1"},
			kind:   domain.InvalidTransition,
			tokens: []string{"q0", "c", "q1"},
			line:   5,
		},
		{
			name:   "Invalid Transition Target",
			lines:  []string{"q0", "q0 q1", "a b", "q1", "q0 a q1", "q1 a q7"},
			kind:   domain.InvalidTransition,
			tokens: []string{"q1", "a", "q7"},
			line:   6,
		},
		{
			name:   "Duplicate Transition",
			lines:  []string{"q0", "q0 q1", "a b", "q1", "q0 a q1", "q1 b q1", "q0 a q0"},
			kind:   domain.DuplicateTransition,
			tokens: []string{"q0", "a", "q0"},
			line:   7,
		},
		{
			name:   "Malformed Transition",
			lines:  []string{"q0", "q0 q1", "a b", "q1", "q0 a"},
			kind:   domain.MalformedTransition,
			tokens: []string{"q0", "a"},
			line:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := compiler.Build(tt.lines)
			assert.Nil(t, a, "a failed build must not produce an automaton")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "expected %s, got %v", tt.kind, err)

			le, ok := domain.AsLoadError(err)
			require.True(t, ok)
			assert.Equal(t, tt.tokens, le.Tokens)
			assert.Equal(t, tt.line, le.Line)
		})
	}
}

func TestBuild_EmptyAcceptingLine(t *testing.T) {
	a, err := compiler.Build([]string{"q0", "q0 q1", "a b", "   ", "q0 a q1"})
	require.NoError(t, err)
	assert.Empty(t, a.Accepting())
	assert.Len(t, a.Transitions(), 1)
}

func TestBuild_WhitespaceLinesBetweenTransitionsAreIgnored(t *testing.T) {
	a, err := compiler.Build([]string{"q0", "q0 q1", "a", "q1", "q0 a q1", "  ", "q1 a q0 trailing tokens"})
	require.NoError(t, err)
	assert.Len(t, a.Transitions(), 2)
}

func TestBuild_StartStateLineIsTrimmed(t *testing.T) {
	a, err := compiler.Build([]string{"  q1 ", "q0 q1", "a", "q1"})
	require.NoError(t, err)
	assert.Equal(t, "q1", a.StartState().Name)
}

func TestBuild_PartialTableIsValid(t *testing.T) {
	a, err := compiler.Build([]string{"q0", "q0", "a b", "q0"})
	require.NoError(t, err)
	assert.Empty(t, a.Transitions())
	assert.False(t, a.IsComplete())
}

func TestBuild_MultiCharacterSymbolTokens(t *testing.T) {
	a, err := compiler.Build([]string{"s", "s t", "xy zw", "t", "s xenon t"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{'x', 'z'}, a.Symbols())
	assert.Equal(t, []domain.Transition{{From: "s", Symbol: 'x', To: "t"}}, a.Transitions())
}

func TestParse_CommentsAndCRLF(t *testing.T) {
	a, err := compiler.Parse(strings.NewReader("# header\r\nq0\r\n\r\nq0\r\na\r\nq0\r\nq0 a q0\r\n"))
	require.NoError(t, err)
	assert.True(t, a.IsComplete())
}
