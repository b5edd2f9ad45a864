package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. This is
// typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// designFile is the path of the design being operated on, shared by all
// subcommands via the persistent --file flag.
var designFile string

// Execute runs the bitcarousel CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "bitcarousel",
		Short:        "BitCarousel designs concentric-ring rotary tool stands",
		Long:         `BitCarousel lays out sockets for rotary tool accessories on the concentric rings of a circular stand, keeps every layout collision-free, and exports the result for CNC milling.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("bitcarousel %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&designFile, "file", "f", "stand.json", "design file to operate on")

	root.AddCommand(newNewCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newPlaceCmd())
	root.AddCommand(newMoveCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newCenterCmd())
	root.AddCommand(newRingCmd())
	root.AddCommand(newArcsCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newTemplateCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newGcodeCmd())
	root.AddCommand(newEstimateCmd())
	root.AddCommand(newProfileCmd())
	root.AddCommand(newBackupCmd())

	return root.ExecuteContext(context.Background())
}
