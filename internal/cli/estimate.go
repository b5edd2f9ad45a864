package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// newEstimateCmd creates the "estimate" command.
func newEstimateCmd() *cobra.Command {
	var edgeMargin, thickness, pricePerSqM float64

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate blank material and milling time for the design",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, catalog, err := newEngine()
			if err != nil {
				return err
			}

			settings := model.DefaultSettings()
			if path, err := project.DefaultConfigPath(); err == nil {
				if cfg, err := project.LoadAppConfig(path); err == nil {
					cfg.ApplyToSettings(&settings)
				}
			}

			blank := model.CalculateBlankEstimate(eng.DesignDiameter(d), edgeMargin, thickness, pricePerSqM)
			milling := model.CalculateMillingSummary(d, catalog, settings)

			fmt.Println(StyleTitle.Render("Blank"))
			printKeyValue("Design", fmt.Sprintf("Ø %.1f mm", blank.DesignDiameter))
			printKeyValue("Blank", fmt.Sprintf("Ø %.1f mm x %.0f mm", blank.BlankDiameter, blank.Thickness))
			printKeyValue("Face area", fmt.Sprintf("%.1f sq cm", blank.BlankArea/100))
			printKeyValue("Volume", fmt.Sprintf("%.1f cu cm", blank.Volume/1000))
			if pricePerSqM > 0 {
				printKeyValue("Est. cost", fmt.Sprintf("%.2f", blank.EstimatedCost))
			}

			fmt.Println(StyleTitle.Render("Milling"))
			printKeyValue("Sockets", fmt.Sprintf("%d", milling.SocketCount))
			printKeyValue("Passes", fmt.Sprintf("%d", milling.Passes))
			printKeyValue("Toolpath", fmt.Sprintf("%.0f mm", milling.TotalPathLength))
			printKeyValue("Job time", fmt.Sprintf("%.1f min", milling.EstimatedMinutes))
			return nil
		},
	}

	cmd.Flags().Float64Var(&edgeMargin, "margin", 10, "material margin beyond the design edge in mm")
	cmd.Flags().Float64Var(&thickness, "thickness", 18, "blank thickness in mm")
	cmd.Flags().Float64Var(&pricePerSqM, "price", 0, "material price per square meter")
	return cmd
}
