package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// newNewCmd creates the "new" command.
func newNewCmd() *cobra.Command {
	var maxRadius float64

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new empty stand design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			d := model.NewDesign(args[0])
			if maxRadius > 0 {
				d.MaxRadius = maxRadius
			} else if path, err := project.DefaultConfigPath(); err == nil {
				if cfg, err := project.LoadAppConfig(path); err == nil && cfg.DefaultMaxRadius > 0 {
					d.MaxRadius = cfg.DefaultMaxRadius
				}
			}

			if err := saveDesign(d); err != nil {
				return err
			}
			logger.Debug("created design", "name", d.Name, "max_radius", d.MaxRadius)
			printSuccess("Created design %q (workspace cap %.0fmm)", d.Name, d.MaxRadius)
			printFile(designFile)
			return nil
		},
	}

	cmd.Flags().Float64Var(&maxRadius, "max-radius", 0, "workspace cap in mm (default from config)")
	return cmd
}

// newShowCmd creates the "show" command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the design's rings and placed sockets",
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

			fmt.Println(StyleTitle.Render(d.Name))
			printKeyValue("Diameter", fmt.Sprintf("%.1f mm", eng.DesignDiameter(d)))
			printKeyValue("Workspace cap", fmt.Sprintf("%.1f mm", d.MaxRadius))
			if d.Center != "" {
				label := d.Center
				if spec, ok := catalog.Find(d.Center); ok {
					label = spec.Label
				}
				printKeyValue("Center well", label)
			}

			for i, r := range d.Rings {
				mode := "continuous"
				if r.Divisions > 0 {
					mode = fmt.Sprintf("%d slots", r.Divisions)
				}
				items := d.RingItems(i)
				fmt.Println(StyleTitle.Render(fmt.Sprintf("Ring %d", i)) +
					StyleDim.Render(fmt.Sprintf("  r=%.1fmm, %s, %d sockets", r.Radius, mode, len(items))))

				sort.Slice(items, func(a, b int) bool { return items[a].Angle < items[b].Angle })
				for _, it := range items {
					label := it.ItemType
					if spec, ok := catalog.Find(it.ItemType); ok {
						label = spec.Label
					}
					printDetail("%-8s %-22s %6.1f°", it.ID, label, it.Angle)
				}
			}
			return nil
		},
	}
}

// newValidateCmd creates the "validate" command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the design for overlaps and constraint violations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, _, err := newEngine()
			if err != nil {
				return err
			}

			violations := eng.Validate(d)
			if len(violations) == 0 {
				printSuccess("Design is valid: %d sockets on %d rings", len(d.Items), len(d.Rings))
				return nil
			}

			for _, v := range violations {
				printWarning("%s", v.String())
			}
			return fmt.Errorf("%d violation(s) found", len(violations))
		},
	}
}

// newArcsCmd creates the "arcs" command.
func newArcsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arcs <ring>",
		Short: "List the free arcs still available on a ring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ring, err := parseRingArg(args[0])
			if err != nil {
				return err
			}
			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, _, err := newEngine()
			if err != nil {
				return err
			}

			arcs, err := eng.FreeArcs(d, ring)
			if err != nil {
				return reportEngineError(err)
			}
			if len(arcs) == 0 {
				printInfo("Ring %d has no usable free arcs", ring)
				return nil
			}

			var total float64
			lines := make([]string, 0, len(arcs))
			for _, a := range arcs {
				total += a.Span
				lines = append(lines, fmt.Sprintf("%.1f°+%.1f°", a.Start, a.Span))
			}
			printInfo("Ring %d free arcs (%.1f° total):", ring, total)
			printDetail("%s", strings.Join(lines, "  "))
			return nil
		},
	}
}
