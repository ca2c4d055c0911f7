package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tsawler/folio/internal/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the folio CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, loads the
// optional configuration file, configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	root := &cobra.Command{
		Use:          "folio",
		Short:        "Folio imposes PDF pages onto larger sheets",
		Long:         `Folio is a CLI tool for PDF page imposition: N-up arrangements that place several source pages on one sheet, and poster tiling that splits an oversized page across many smaller sheets.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("folio %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newNUpCmd(cfg))
	root.AddCommand(newPosterCmd(cfg))
	root.AddCommand(newPreviewCmd(cfg))
	root.AddCommand(newMergeCmd())
	root.AddCommand(newSplitCmd())
	root.AddCommand(newRotateCmd())
	root.AddCommand(newStampCmd())
	root.AddCommand(newOCRCmd())

	return root.ExecuteContext(ctx)
}
