package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/dfa/internal/presentation/graph"
	"github.com/aretw0/dfa/internal/runtime"
	"github.com/aretw0/dfa/internal/testutils"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		description string
		contains    []string
		excludes    []string
	}{
		{
			name:        "Start And Accepting",
			description: "q0\nq0 q1\na b\nq1\nq0 a q1\n",
			contains: []string{
				"stateDiagram-v2\n",
				"    [*] --> q0\n",
				"    q0 --> q1 : a\n",
				"    q1 --> [*]\n",
				"    class q1 accepting\n",
			},
			excludes: []string{"q0 --> [*]"},
		},
		{
			name:        "Merged Labels",
			description: "s\ns t\nx y z\nt\ns x t\ns z t\nt y t\n",
			contains: []string{
				"    s --> t : x, z\n",
				"    t --> t : y\n",
			},
		},
		{
			name:        "ID Sanitization",
			description: "start-1\nstart-1 end.2\na\nend.2\nstart-1 a end.2\n",
			contains: []string{
				"    state \"start-1\" as start_1\n",
				"    state \"end.2\" as end_2\n",
				"    start_1 --> end_2 : a\n",
			},
		},
		{
			name:        "ID Collision",
			description: "a-b\na-b a_b\nx\n \n",
			contains: []string{
				"    state \"a-b\" as a_b\n",
				"    state \"a_b\" as a_b_1\n",
			},
		},
		{
			name:        "No Accepting States",
			description: "q0\nq0\na\n \nq0 a q0\n",
			contains:    []string{"    q0 --> q0 : a\n"},
			excludes:    []string{"accepting", "--> [*]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(testutils.MustParse(t, tt.description), nil)
			for _, c := range tt.contains {
				assert.Contains(t, out, c)
			}
			for _, e := range tt.excludes {
				assert.NotContains(t, out, e)
			}
			assert.NotContains(t, out, "Overlay")
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	a := testutils.MustParse(t, "q0\nq0 q1 q2\na b\nq2\nq0 a q1\nq1 b q2\nq2 a q2\n")

	out := graph.GenerateMermaid(a, graph.OverlayFromRun(runtime.Trace(a, "ab")))

	assert.Contains(t, out, "classDef visited")
	assert.Contains(t, out, "    class q0 visited\n")
	assert.Contains(t, out, "    class q1 visited\n")
	assert.Contains(t, out, "    class q2 current\n")
	assert.Equal(t, 1, strings.Count(out, "class q0 visited"))
	assert.NotContains(t, out, "class q2 visited")
}

func TestOverlayFromRun_InvalidSymbol(t *testing.T) {
	a := testutils.MustParse(t, "q0\nq0\na\nq0\n")

	o := graph.OverlayFromRun(runtime.Trace(a, "z"))
	assert.Empty(t, o.VisitedStates)
	assert.Empty(t, o.CurrentState)
}
