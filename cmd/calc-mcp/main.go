package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"
	"github.com/spf13/cobra"
)

// options holds the flag values shared by all commands
type options struct {
	configPath  string
	logLevel    string
	maxSessions int

	config types.Config
}

// load resolves the effective config: defaults, then the config file, then
// any flags set explicitly on the command line
func (o *options) load(cmd *cobra.Command) error {
	config := types.DefaultConfig()

	if o.configPath != "" {
		loaded, err := types.LoadConfig(o.configPath, config)
		if err != nil {
			return err
		}
		config = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		config.LogLevel = o.logLevel
	}
	if flag := flags.Lookup("max-sessions"); flag != nil && flag.Changed {
		config.MaxSessions = o.maxSessions
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	o.config = config

	// Stdout carries the MCP protocol, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)
	return nil
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           project.Name,
		Short:         "A pocket calculator engine served over MCP",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", types.DefaultLogLevel, "Log level (debug, info, warn, error)")

	root.AddCommand(newServeCommand(opts))
	root.AddCommand(newEvalCommand(opts))
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
