package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cdfmlr/goflowchart/internal/logging"
	"github.com/cdfmlr/goflowchart/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts goflowchart as an MCP Server over stdio.
This lets AI agent hosts call the render_flowchart tool to turn Go code
they are reading into flowchart.js diagrams.`,
	Run: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger := logging.New(logging.ParseLevel(level))
		slog.SetDefault(logger)

		// Ensure logs don't corrupt JSON-RPC on Stdout.
		log.SetOutput(os.Stderr)

		srv := mcp.NewServer(logger)
		slog.Info("starting MCP server (stdio)")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
}
