package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/twofold/internal/version"
	"github.com/arthur-debert/twofold/pkg/logging"
)

var verbosity int

// NewRootCmd builds the twofold command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "twofold",
		Short: "Fill templates with values, and read the values back out",
		Long: `twofold is a bidirectional templating tool. A template is plain text in
which any substring can act as a named target: twofold fills targets with
values to produce output, and extracts the values back out of text that
matches the template's structure.

Templates are declared in small TOML or YAML manifests; see
'twofold guide' for the full story.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newFillCmd(),
		newExtractCmd(),
		newInspectCmd(),
		newGuideCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "twofold version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
