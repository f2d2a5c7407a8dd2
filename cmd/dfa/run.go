package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <automaton> <strings>",
	Short: "Classify every line of a strings file",
	Long: `Loads the automaton description and prints one verdict per line of the
strings file. Empty lines and lines starting with '#' are skipped in both files.
Automata ending in .yaml, .yml or .json are read as structured documents.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		summary, _ := cmd.Flags().GetBool("summary")

		return classify(cmd, cli.SessionOptions{
			AutomatonPath: args[0],
			StringsPath:   args[1],
			JSON:          jsonMode,
			Summary:       summary,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Print results as JSON lines")
	runCmd.Flags().Bool("summary", false, "Print verdict counts after the results")
}
