package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/dfa"
	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/internal/config"
	"github.com/aretw0/dfa/internal/presentation/tui"
	"github.com/aretw0/dfa/pkg/observability"
)

var rootCmd = &cobra.Command{
	Use:   "dfa",
	Short: "dfa classifies strings with a deterministic finite automaton",
	Long: `dfa loads a deterministic finite automaton from a text description and
classifies every line of a strings file as accepted, rejected or containing a
wrong symbol.

Without a subcommand it asks for both file paths on standard input.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			tui.PrintBanner(cmd.ErrOrStderr())
		}

		automatonPath, stringsPath, err := cli.PromptPaths(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return classify(cmd, cli.SessionOptions{
			AutomatonPath: automatonPath,
			StringsPath:   stringsPath,
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("store", "", "Automaton registry: memory, file or redis")
	pf.String("store-dir", "", "Directory of the file registry")
	pf.String("redis-addr", "", "Address of the redis registry")
	pf.Int("workers", 0, "Parallel classification workers (0: one per CPU)")
	pf.Bool("no-color", false, "Disable coloured output")
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("store") {
		cfg.Store.Driver, _ = flags.GetString("store")
	}
	if flags.Changed("store-dir") {
		cfg.Store.Dir, _ = flags.GetString("store-dir")
	}
	if flags.Changed("redis-addr") {
		cfg.Store.Redis.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = false
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Server.Port, _ = flags.GetInt("port")
	}
	return cfg, cfg.Validate()
}

// newEngine builds the engine for cmd from its configuration.
func newEngine(cmd *cobra.Command, m *observability.Metrics) (*dfa.Engine, config.Config, *slog.Logger, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, nil, nil, err
	}
	logger, err := cli.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, cfg, nil, nil, err
	}
	eng, closeStore, err := cli.NewEngine(cfg, logger, m)
	if err != nil {
		return nil, cfg, nil, nil, err
	}
	return eng, cfg, logger, closeStore, nil
}

// classify runs a classification session and writes verdicts to stdout.
func classify(cmd *cobra.Command, opts cli.SessionOptions) error {
	eng, cfg, _, closeStore, err := newEngine(cmd, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := cli.NewSignalContext(cmd.Context())
	defer ctx.Stop()

	opts.Color = cfg.Color
	_, err = cli.RunSession(ctx, eng, opts, cmd.OutOrStdout())
	return err
}
