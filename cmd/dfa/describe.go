package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe <automaton>",
	Short: "Print the automaton and its transition table",
	Long: `Prints the start state, accepting states, alphabet and the full transition
table, with '?' for undefined transitions. Use --trace to also show how given
strings are classified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		traces, _ := cmd.Flags().GetStringArray("trace")
		raw, _ := cmd.Flags().GetBool("raw")

		eng, cfg, _, closeStore, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		a, err := eng.LoadFile(cmd.Context(), args[0])
		if err != nil {
			return &cli.LoadFailure{Err: err}
		}

		var md strings.Builder
		md.WriteString(tui.Describe(a))
		for _, input := range traces {
			md.WriteString("\n")
			md.WriteString(tui.DescribeRun(input, eng.Trace(cmd.Context(), a, input)))
		}

		if raw {
			fmt.Fprint(cmd.OutOrStdout(), md.String())
			return nil
		}

		render := tui.NewPlainRenderer()
		if f, ok := cmd.OutOrStdout().(*os.File); ok && cfg.Color && term.IsTerminal(int(f.Fd())) {
			width, _, _ := term.GetSize(int(f.Fd()))
			render = tui.NewRenderer(width)
		}
		out, err := render(md.String())
		if err != nil {
			return fmt.Errorf("failed to render description: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringArrayP("trace", "t", nil, "Classify a string and show its path (repeatable)")
	describeCmd.Flags().Bool("raw", false, "Print Markdown without rendering")
}
