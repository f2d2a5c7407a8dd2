package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/cli"
	"github.com/aretw0/dfa/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing the classifier as tools",
	Long: `Starts a Model Context Protocol server with the tools register, classify,
trace, describe, graph and list_automata. Uses stdio by default, or SSE with --sse.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		useSSE, _ := cmd.Flags().GetBool("sse")

		eng, cfg, _, closeStore, err := newEngine(cmd, nil)
		if err != nil {
			return err
		}
		defer closeStore()

		srv := mcp.NewServer(eng)
		if !useSSE {
			return srv.ServeStdio()
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Stop()
		return srv.ServeSSE(ctx, cfg.Server.Port)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().Bool("sse", false, "Serve over HTTP with Server-Sent Events instead of stdio")
	mcpCmd.Flags().IntP("port", "p", 8080, "Port for --sse")
}
