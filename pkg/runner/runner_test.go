package runner_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/pkg/adapters/memory"
	"github.com/aretw0/dfa/pkg/domain"
	"github.com/aretw0/dfa/pkg/ports"
	"github.com/aretw0/dfa/pkg/runner"
)

// Accepts strings over {a,b} with an even number of a's; "ba" has no transition.
const evenA = `even
even odd
a b
even
even a odd
even b even
odd a even
`

func setup(t *testing.T) (*dfa.Engine, *domain.Automaton) {
	t.Helper()
	eng := dfa.New(dfa.WithWorkers(3))
	a, err := eng.Compile(context.Background(), "even-a", evenA)
	require.NoError(t, err)
	return eng, a
}

func TestRun_Text(t *testing.T) {
	eng, a := setup(t)
	var buf bytes.Buffer

	src := memory.NewSource("# candidates\naa\na\nab\nabc\n\nbb\n")
	summary, err := runner.Run(context.Background(), eng, a, src, runner.NewTextReporter(&buf, termenv.WithProfile(termenv.Ascii)))
	require.NoError(t, err)

	assert.Equal(t, "ACCEPTED LINE aa\n"+
		"REJECTED LINE a\n"+
		"REJECTED LINE ab\n"+
		"WRONG SYMBOL: abc\n"+
		"ACCEPTED LINE bb\n", buf.String())
	assert.Equal(t, runner.Summary{Total: 5, Accepted: 2, Rejected: 2, InvalidSymbol: 1}, summary)
}

func TestRun_JSON(t *testing.T) {
	eng, a := setup(t)
	var buf bytes.Buffer

	_, err := runner.Run(context.Background(), eng, a, memory.NewSourceFromLines("aa", "x"), runner.NewJSONReporter(&buf))
	require.NoError(t, err)

	assert.Equal(t, `{"input":"aa","verdict":"accepted"}`+"\n"+
		`{"input":"x","verdict":"invalid_symbol"}`+"\n", buf.String())
}

func TestRun_ReporterError(t *testing.T) {
	eng, a := setup(t)
	boom := errors.New("boom")

	calls := 0
	rep := ports.ReporterFunc(func(ctx context.Context, input string, v domain.Verdict) error {
		calls++
		return boom
	})
	_, err := runner.Run(context.Background(), eng, a, memory.NewSourceFromLines("aa", "bb"), rep)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRun_Canceled(t *testing.T) {
	eng, a := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := runner.Run(ctx, eng, a, memory.NewSourceFromLines("aa"), runner.NewTextReporter(&buf))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestTextReporter_Colour(t *testing.T) {
	var buf bytes.Buffer
	rep := runner.NewTextReporter(&buf, termenv.WithProfile(termenv.TrueColor))

	require.NoError(t, rep.Report(context.Background(), "ab", domain.Accepted))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "ACCEPTED LINE ")
	assert.Contains(t, buf.String(), "ab\n")

	assert.Error(t, rep.Report(context.Background(), "ab", domain.Verdict(9)))
}
