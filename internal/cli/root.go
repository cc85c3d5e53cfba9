// Package cli wires the cxxstd command tree.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/cxxstd/internal/cli/commands"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "cxxstd",
		Short: "Classify the minimum C++ standard your sources require",
		Long: `cxxstd scans C++ source files, detects cataloged core-language
features and reports the minimum standard each file requires. Point it at a
floor standard and it becomes a CI gate: exit 0 when the floor is enough,
exit 1 when some file needs a newer standard.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: cxxstd.yaml, searched upward)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		commands.NewCheckCommand(),
		commands.NewFeaturesCommand(),
		commands.NewVersionCommand(Version),
	)

	return root
}

// Execute runs the root command against os.Args.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	root.SetArgs(os.Args[1:])
	return root.ExecuteContext(ctx)
}
