package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/gcode"
	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// newGcodeCmd creates the "gcode" command.
func newGcodeCmd() *cobra.Command {
	var out, profile string
	var toolDiameter, socketDepth float64

	cmd := &cobra.Command{
		Use:   "gcode",
		Short: "Generate a GCode program that mills the socket pockets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			d, err := loadDesign()
			if err != nil {
				return err
			}
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}

			settings := model.DefaultSettings()
			if path, err := project.DefaultConfigPath(); err == nil {
				if cfg, err := project.LoadAppConfig(path); err == nil {
					cfg.ApplyToSettings(&settings)
				}
			}
			if profile != "" {
				settings.Profile = profile
			}
			if toolDiameter > 0 {
				settings.ToolDiameter = toolDiameter
			}
			if socketDepth > 0 {
				settings.SocketDepth = socketDepth
			}

			gen := gcode.New(settings, catalog)
			code := gen.Generate(d)

			if err := os.WriteFile(out, []byte(code), 0644); err != nil {
				return fmt.Errorf("failed to write gcode: %w", err)
			}

			moves := gcode.Parse(code)
			minutes := gcode.EstimateTime(moves, 3000)
			logger.Debug("generated gcode", "moves", len(moves), "profile", settings.Profile)

			printSuccess("Generated %d moves (%s profile, est. %.1f min)", len(moves), settings.Profile, minutes)
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "stand.nc", "output file path")
	cmd.Flags().StringVar(&profile, "profile", "", "machine profile (default from config)")
	cmd.Flags().Float64Var(&toolDiameter, "tool", 0, "end mill diameter in mm")
	cmd.Flags().Float64Var(&socketDepth, "depth", 0, "socket pocket depth in mm")
	return cmd
}
