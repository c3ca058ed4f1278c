package main

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/spf13/cobra"
)

func newEvalCommand(opts *options) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "eval KEYS...",
		Short: "Press keys on a fresh calculator and print the display",
		Long: `Press keys on a fresh calculator and print the display.

Keys: 0-9 . + - * x / = %, ~ for +/-, c for clear. Arguments are joined, so
"eval 12 + 3 =" and "eval 12+3=" are equivalent.`,
		Example: "  calc-mcp eval '1+1==='\n  calc-mcp eval --trace '12.5*~4%'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := keypad.Parse(strings.Join(args, ""))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			flashes := 0
			c := calculator.New(func() { flashes++ })

			for _, key := range keys {
				before := flashes
				if err := key.Press(c); err != nil {
					return fmt.Errorf("failed to press %s: %w", key, err)
				}
				if trace {
					line := fmt.Sprintf("%s\t%s\t%s", key, c.Display(), c.ClearLabel())
					if flashes > before {
						line += "\t(flash)"
					}
					fmt.Fprintln(out, line)
				}
			}

			if !trace {
				fmt.Fprintln(out, c.Display())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Print the key, display and clear label after every key")
	return cmd
}
