package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/internal/runtime"
	"github.com/aretw0/dfa/pkg/compiler"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/schema"
)

const evenAs = `start: e
states: [e, o]
symbols: [a, b]
accepting: [e]
transitions:
  - {from: e, symbol: a, to: o}
  - {from: o, symbol: a, to: e}
  - {from: e, symbol: b, to: e}
  - {from: o, symbol: b, to: o}
`

func TestUnmarshalYAML(t *testing.T) {
	a, err := schema.UnmarshalYAML([]byte(evenAs))
	require.NoError(t, err)

	assert.Equal(t, "e", a.StartState().Name)
	assert.Equal(t, []string{"e"}, a.Accepting())
	assert.True(t, a.IsComplete())
}

func TestYAML_MatchesTextDescription(t *testing.T) {
	fromYAML, err := schema.UnmarshalYAML([]byte(evenAs))
	require.NoError(t, err)

	fromText, err := compiler.ParseString("e\ne o\na b\ne\ne a o\no a e\ne b e\no b o\n")
	require.NoError(t, err)

	assert.Equal(t, compiler.Format(fromText), compiler.Format(fromYAML))
}

func TestJSON_RoundTrip(t *testing.T) {
	a, err := compiler.ParseString("s\ns t\nx y\n \ns x t\n")
	require.NoError(t, err)

	data, err := schema.MarshalJSON(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"start": "s",
		"states": ["s", "t"],
		"symbols": ["x", "y"],
		"accepting": [],
		"transitions": [{"from": "s", "symbol": "x", "to": "t"}]
	}`, string(data))

	back, err := schema.UnmarshalJSON(data)
	require.NoError(t, err)
	assert.Equal(t, compiler.Format(a), compiler.Format(back))
}

func TestYAML_RoundTrip(t *testing.T) {
	a, err := schema.UnmarshalYAML([]byte(evenAs))
	require.NoError(t, err)

	data, err := schema.MarshalYAML(a)
	require.NoError(t, err)

	back, err := schema.UnmarshalYAML(data)
	require.NoError(t, err)
	assert.Equal(t, a.Transitions(), back.Transitions())
}

func TestDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  schema.Document
		kind domain.ErrorKind
	}{
		{"Missing Start", schema.Document{}, domain.MissingStartState},
		{"Missing States", schema.Document{Start: "q0"}, domain.MissingStateList},
		{"Unknown Start", schema.Document{Start: "q9", States: []string{"q0"}}, domain.UnknownStartState},
		{"Missing Symbols", schema.Document{Start: "q0", States: []string{"q0"}}, domain.MissingSymbolList},
		{
			"Unknown Finish",
			schema.Document{Start: "q0", States: []string{"q0"}, Symbols: []string{"a"}, Accepting: []string{"q9"}},
			domain.UnknownFinishState,
		},
		{
			"Duplicate Transition",
			schema.Document{
				Start: "q0", States: []string{"q0", "q1"}, Symbols: []string{"a"},
				Transitions: []schema.Transition{{"q0", "a", "q1"}, {"q0", "a", "q0"}},
			},
			domain.DuplicateTransition,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.doc.Build()
			assert.Nil(t, a)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestDocument_EmptySymbolToken(t *testing.T) {
	doc := schema.Document{Start: "q0", States: []string{"q0"}, Symbols: []string{""}}
	_, err := doc.Build()
	assert.ErrorIs(t, err, domain.ErrEmptySymbol)
}

func TestDocument_Build_RejectsUnwritableTokens(t *testing.T) {
	tests := []struct {
		name string
		doc  schema.Document
	}{
		{"empty state", schema.Document{Start: "q0", States: []string{"q0", ""}, Symbols: []string{"a"}}},
		{"state with space", schema.Document{Start: "q0", States: []string{"q0", "q 1"}, Symbols: []string{"a"}}},
		{"state with tab", schema.Document{Start: "q\t0", States: []string{"q\t0"}, Symbols: []string{"a"}}},
		{"space symbol", schema.Document{Start: "q0", States: []string{"q0"}, Symbols: []string{"a", " "}}},
		{"newline symbol", schema.Document{Start: "q0", States: []string{"q0"}, Symbols: []string{"\n"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.doc.Build()
			assert.Nil(t, a)
			assert.ErrorIs(t, err, domain.InvalidToken)
		})
	}
}

func TestDocument_Build_TextRoundTrip(t *testing.T) {
	doc := schema.Document{
		Start:       "#start",
		States:      []string{"#start", "end"},
		Symbols:     []string{"#", "\xe9"},
		Accepting:   []string{"end"},
		Transitions: []schema.Transition{{From: "#start", Symbol: "\xe9", To: "end"}},
	}
	a, err := doc.Build()
	require.NoError(t, err)

	again, err := compiler.ParseString(compiler.Format(a))
	require.NoError(t, err)
	assert.Equal(t, compiler.Format(a), compiler.Format(again))
	assert.Equal(t, domain.Accepted, runtime.Classify(again, "\xe9"))
}
