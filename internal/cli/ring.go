package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newRingCmd creates the "ring" command group.
func newRingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring",
		Short: "Manage the design's rings",
	}

	cmd.AddCommand(newRingAddCmd())
	cmd.AddCommand(newRingRemoveCmd())
	cmd.AddCommand(newRingRadiusCmd())
	cmd.AddCommand(newRingDivisionsCmd())

	return cmd
}

func newRingAddCmd() *cobra.Command {
	var divisions int

	cmd := &cobra.Command{
		Use:   "add <radius>",
		Short: "Add a ring at the given radius",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			radius, err := parseFloatArg(args[0], "radius")
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

			next, idx, err := eng.AddRing(d, radius, divisions)
			if err != nil {
				return reportEngineError(err)
			}
			if err := saveDesign(next); err != nil {
				return err
			}
			printSuccess("Added ring %d at r=%.1fmm", idx, next.Rings[idx].Radius)
			return nil
		},
	}

	cmd.Flags().IntVar(&divisions, "divisions", 0, "slot count for a gridded ring (0 = continuous)")
	return cmd
}

func newRingRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <ring>",
		Short: "Remove a ring and all its sockets",
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

			removed := len(d.RingItems(ring))
			next, err := eng.RemoveRing(d, ring)
			if err != nil {
				return reportEngineError(err)
			}
			if err := saveDesign(next); err != nil {
				return err
			}
			printSuccess("Removed ring %d (%d sockets destroyed)", ring, removed)
			return nil
		},
	}
}

func newRingRadiusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "radius <ring> <radius>",
		Short: "Set a ring's radius",
		Long:  `Set a ring's radius. A request below the minimum feasible radius is clamped up to it; the final radius is reported.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ring, err := parseRingArg(args[0])
			if err != nil {
				return err
			}
			radius, err := parseFloatArg(args[1], "radius")
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

			next, final, err := eng.SetRingRadius(d, ring, radius)
			if err != nil {
				return reportEngineError(err)
			}
			if err := saveDesign(next); err != nil {
				return err
			}
			if final > radius {
				printWarning("Requested %.1fmm is below the feasible minimum; using %.1fmm", radius, final)
			} else {
				printSuccess("Ring %d radius set to %.1fmm", ring, final)
			}
			return nil
		},
	}
}

func newRingDivisionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divisions <ring> <count>",
		Short: "Set a ring's slot count",
		Long:  `Regrid a ring to the given slot count. Existing sockets are reassigned to the new slots in angular order; the change is rejected if any socket would no longer fit.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ring, err := parseRingArg(args[0])
			if err != nil {
				return err
			}
			divisions, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid division count %q", args[1])
			}

			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, _, err := newEngine()
			if err != nil {
				return err
			}

			next, err := eng.SetRingDivisions(d, ring, divisions)
			if err != nil {
				return reportEngineError(err)
			}
			if err := saveDesign(next); err != nil {
				return err
			}
			printSuccess("Ring %d regridded to %d slots", ring, divisions)
			return nil
		},
	}
}
