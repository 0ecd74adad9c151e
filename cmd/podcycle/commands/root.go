// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the podcycle CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podcycle",
		Short: "Ordered reset of stateful pod groups with audit and readiness gating",
	}

	cmd.AddCommand(Reset())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
