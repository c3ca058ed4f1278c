package main

import (
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/types"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calculator sessions over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.NewCalculatorServer(opts.config).Serve(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&opts.maxSessions, "max-sessions", types.DefaultMaxSessions, "Maximum number of open calculator sessions")
	return cmd
}
