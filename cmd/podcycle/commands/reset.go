package commands

import (
	"github.com/spf13/cobra"

	"github.com/podcycle/podcycle/cmd/podcycle/handlers"
	"github.com/podcycle/podcycle/internal/config"
)

// Reset returns the reset command.
//
// The reset command deletes the pods of an ordinally indexed stateful
// group one by one, capturing warning events for each member before it
// is disturbed, then waits for the whole group to become ready, resets
// the dependent group, and hands the terminal to an interactive monitor.
func Reset() *cobra.Command {
	var (
		configPath     string
		kubeconfigPath string
		yes            bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset a stateful pod group in ordinal order, then its dependents",
		Long: `Reset deletes the pods of a stateful, ordinally indexed group one member
at a time, in ascending ordinal order, with a pacing delay between
members. Recent warning events for each member are written to the
session log before that member is deleted.

Supported group sizes are 1 (single node) and 3 (replicated cluster).
Any other size aborts the run before anything is deleted.

After the last member, the run blocks until every pod of the group
reports ready, bounded by the configured timeout. Only then is the
dependent group deleted (unordered), and control handed to the
configured interactive monitor.

Example:
  podcycle reset -c podcycle.yaml

WARNING: This operation deletes live pods. The backing service must
tolerate member restarts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Reset(cmd.Context(), configPath, kubeconfigPath, yes)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "Path to podcycle configuration file")
	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to kubeconfig (defaults to standard resolution)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the privilege confirmation prompt")

	return cmd
}
