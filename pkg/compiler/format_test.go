package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dfa/internal/runtime"
	"github.com/aretw0/dfa/pkg/compiler"
)

func TestFormat_Canonical(t *testing.T) {
	a, err := compiler.ParseString(scenario)
	require.NoError(t, err)

	expected := `# start state
q0
# states
q0 q1
# symbols
a b
# accepting states
q1
# transitions
q0 a q1
q1 b q1
`
	assert.Equal(t, expected, compiler.Format(a))
}

func TestFormat_GuardsSignificantLines(t *testing.T) {
	a, err := compiler.Build([]string{"#s", "#s t", "# a", " ", "#s # t"})
	require.NoError(t, err)

	text := compiler.Format(a)
	assert.Contains(t, text, "\n #s\n")
	assert.Contains(t, text, "\n # a\n")
	assert.Contains(t, text, "# accepting states\n \n")

	back, err := compiler.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, a.Transitions(), back.Transitions())
	assert.Equal(t, a.Symbols(), back.Symbols())
}

func TestFormat_RoundTripClassifiesIdentically(t *testing.T) {
	descriptions := map[string]string{
		"scenario": scenario,
		"even-a": `e
e o
a b
e
e a o
o a e
e b e
o b o
`,
		"no-accepting":            "s\ns t\nx y\n \ns x t\nt y s\n",
		"start-accepting-partial": "p\np q r\n0 1\np r\np 0 q\nq 1 r\nr 0 r\n",
	}
	inputs := []string{"", "a", "b", "ab", "ba", "aab", "abab", "bbb", "ac", "x", "xy", "xyx", "0", "01", "010", "0100", "1", "z"}

	for name, desc := range descriptions {
		t.Run(name, func(t *testing.T) {
			original, err := compiler.ParseString(desc)
			require.NoError(t, err)

			rebuilt, err := compiler.ParseString(compiler.Format(original))
			require.NoError(t, err)

			assert.Equal(t, original.States(), rebuilt.States())
			assert.Equal(t, original.Symbols(), rebuilt.Symbols())
			assert.Equal(t, original.Transitions(), rebuilt.Transitions())
			for _, in := range inputs {
				assert.Equal(t, runtime.Classify(original, in), runtime.Classify(rebuilt, in), "input %q", in)
			}

			again := compiler.Format(rebuilt)
			assert.Equal(t, compiler.Format(original), again, "Format must be stable")
		})
	}
}
