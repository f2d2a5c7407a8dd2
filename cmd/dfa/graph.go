package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <automaton>",
	Short: "Export the automaton as a Mermaid state diagram",
	Long: `Outputs a Mermaid diagram (stateDiagram-v2) of the automaton. With --input,
the states visited while classifying that string are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, _, closeStore, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		a, err := eng.LoadFile(cmd.Context(), args[0])
		if err != nil {
			return &cli.LoadFailure{Err: err}
		}

		var overlay *graph.GraphOverlay
		if cmd.Flags().Changed("input") {
			input, _ := cmd.Flags().GetString("input")
			overlay = graph.OverlayFromRun(eng.Trace(cmd.Context(), a, input))
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(a, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("input", "i", "", "Highlight the path of this string")
}
