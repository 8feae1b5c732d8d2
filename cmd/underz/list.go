package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [operation]",
		Short: "List available operations",
		Long:  "Display every operation with a description, or the description of one operation.",
		Args:  cobra.MaximumNArgs(1),
		// list reads no document.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				op, ok := lookupOperation(args[0])
				if !ok {
					return fmt.Errorf("%q: %w", args[0], ErrUnknownOperation)
				}
				fmt.Fprintf(out, "%s: %s\n", op.name, op.short)
				return nil
			}
			fmt.Fprintln(out, "Available operations:")
			fmt.Fprintln(out)
			for _, op := range operations() {
				fmt.Fprintf(out, "  %-13s %s\n", op.name, op.short)
			}
			return nil
		},
	}
}
