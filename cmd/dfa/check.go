package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/internal/validator"
)

var errLintFindings = errors.New("lint findings reported")

var checkCmd = &cobra.Command{
	Use:   "check <automaton>...",
	Short: "Validate automaton descriptions",
	Long: `Builds each automaton and reports the first violated rule, without classifying
anything. Valid automata are also linted for unreachable states, dead states and
undefined transitions; with --strict any finding fails the check.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")

		eng, _, _, closeStore, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		out := cmd.OutOrStdout()
		var failed error
		for _, path := range args {
			a, err := eng.LoadFile(cmd.Context(), path)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", path, err)
				if failed == nil {
					failed = &cli.LoadFailure{Err: err}
				}
				continue
			}

			table := "partial"
			if a.IsComplete() {
				table = "complete"
			}
			fmt.Fprintf(out, "%s: ok (%d states, %d symbols, %s)\n", path, a.NumStates(), a.NumSymbols(), table)

			findings := validator.Lint(a)
			for _, f := range findings {
				fmt.Fprintf(out, "  warning: %s\n", f)
			}
			if strict && len(findings) > 0 && failed == nil {
				failed = errLintFindings
			}
		}
		return failed
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("strict", false, "Fail on lint warnings")
}
