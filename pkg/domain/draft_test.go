package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/pkg/domain"
)

func newTwoStateDraft(t *testing.T) *domain.Draft {
	t.Helper()
	d := domain.NewDraft()
	require.NoError(t, d.AddState("q0"))
	require.NoError(t, d.AddState("q1"))
	require.NoError(t, d.SetStart("q0"))
	require.NoError(t, d.AddSymbol("a"))
	require.NoError(t, d.AddSymbol("b"))
	return d
}

func TestDraft_Freeze(t *testing.T) {
	d := newTwoStateDraft(t)
	require.NoError(t, d.MarkAccepting("q1"))
	require.NoError(t, d.AddTransition("q0", "a", "q1"))
	require.NoError(t, d.AddTransition("q1", "b", "q1"))

	a, err := d.Freeze()
	require.NoError(t, err)

	assert.Equal(t, "q0", a.StartState().Name)
	assert.Equal(t, []domain.Symbol{'a', 'b'}, a.Symbols())
	assert.Equal(t, []string{"q1"}, a.Accepting())
	assert.False(t, a.IsComplete())

	q0, _ := a.StateIndex("q0")
	q1, _ := a.StateIndex("q1")
	a0, _ := a.SymbolIndex('a')
	b0, _ := a.SymbolIndex('b')
	assert.Equal(t, q1, a.Next(q0, a0))
	assert.Equal(t, domain.NoTransition, a.Next(q0, b0))
	assert.Equal(t, q1, a.Next(q1, b0))

	assert.Equal(t, []domain.Transition{
		{From: "q0", Symbol: 'a', To: "q1"},
		{From: "q1", Symbol: 'b', To: "q1"},
	}, a.Transitions())
}

func TestDraft_FrozenAutomatonIsIsolated(t *testing.T) {
	d := newTwoStateDraft(t)
	a, err := d.Freeze()
	require.NoError(t, err)

	require.NoError(t, d.MarkAccepting("q0"))
	require.NoError(t, d.AddTransition("q0", "a", "q0"))

	assert.False(t, a.IsAccepting(a.Start()))
	assert.Empty(t, a.Transitions())

	states := a.States()
	states[0].Accepting = true
	assert.False(t, a.IsAccepting(0), "States must return a copy")
}

func TestDraft_Errors(t *testing.T) {
	tests := []struct {
		name   string
		run    func(d *domain.Draft) error
		kind   domain.ErrorKind
		tokens []string
	}{
		{
			name:   "Duplicate State",
			run:    func(d *domain.Draft) error { return d.AddState("q1") },
			kind:   domain.DuplicateState,
			tokens: []string{"q1"},
		},
		{
			name:   "Unknown Start",
			run:    func(d *domain.Draft) error { return d.SetStart("q9") },
			kind:   domain.UnknownStartState,
			tokens: []string{"q9"},
		},
		{
			name:   "Duplicate Symbol Uses First Character",
			run:    func(d *domain.Draft) error { return d.AddSymbol("ab") },
			kind:   domain.DuplicateSymbol,
			tokens: []string{"a"},
		},
		{
			name:   "Unknown Finish State",
			run:    func(d *domain.Draft) error { return d.MarkAccepting("q9") },
			kind:   domain.UnknownFinishState,
			tokens: []string{"q9"},
		},
		{
			name: "Duplicate Finish State",
			run: func(d *domain.Draft) error {
				if err := d.MarkAccepting("q1"); err != nil {
					return err
				}
				return d.MarkAccepting("q1")
			},
			kind:   domain.DuplicateFinishState,
			tokens: []string{"q1"},
		},
		{
			name:   "Transition From Unknown State",
			run:    func(d *domain.Draft) error { return d.AddTransition("q9", "a", "q0") },
			kind:   domain.InvalidTransition,
			tokens: []string{"q9", "a", "q0"},
		},
		{
			name:   "Transition On Unknown Symbol",
			run:    func(d *domain.Draft) error { return d.AddTransition("q0", "c", "q0") },
			kind:   domain.InvalidTransition,
			tokens: []string{"q0", "c", "q0"},
		},
		{
			name:   "Transition To Unknown State",
			run:    func(d *domain.Draft) error { return d.AddTransition("q0", "a", "q9") },
			kind:   domain.InvalidTransition,
			tokens: []string{"q0", "a", "q9"},
		},
		{
			name: "Duplicate Transition Never Overwrites",
			run: func(d *domain.Draft) error {
				if err := d.AddTransition("q0", "a", "q1"); err != nil {
					return err
				}
				return d.AddTransition("q0", "a", "q0")
			},
			kind:   domain.DuplicateTransition,
			tokens: []string{"q0", "a", "q0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(newTwoStateDraft(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "expected %s, got %v", tt.kind, err)

			le, ok := domain.AsLoadError(err)
			require.True(t, ok)
			assert.Equal(t, tt.tokens, le.Tokens)
		})
	}
}

func TestDraft_DuplicateTransitionKeepsFirst(t *testing.T) {
	d := newTwoStateDraft(t)
	require.NoError(t, d.AddTransition("q0", "a", "q1"))
	require.Error(t, d.AddTransition("q0", "a", "q0"))

	a, err := d.Freeze()
	require.NoError(t, err)
	assert.Equal(t, []domain.Transition{{From: "q0", Symbol: 'a', To: "q1"}}, a.Transitions())
}

func TestDraft_FreezeWithoutStart(t *testing.T) {
	d := domain.NewDraft()
	require.NoError(t, d.AddState("q0"))

	a, err := d.Freeze()
	assert.Nil(t, a)
	assert.ErrorIs(t, err, domain.MissingStartState)
}

func TestLoadError_Message(t *testing.T) {
	err := &domain.LoadError{
		Kind:   domain.DuplicateTransition,
		Tokens: []string{"q0", "a", "q0"},
		Line:   7,
	}
	assert.Equal(t, "line 7: duplicate transition: q0 a q0", err.Error())
	assert.Equal(t, "cannot read set of states", (&domain.LoadError{Kind: domain.MissingStateList}).Error())
}
