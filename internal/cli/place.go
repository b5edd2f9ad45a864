package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPlaceCmd creates the "place" command.
func newPlaceCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "place <item-type> <ring>",
		Short: "Place sockets for an item type on a ring",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			ring, err := parseRingArg(args[1])
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("invalid count %d", count)
			}

			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, catalog, err := newEngine()
			if err != nil {
				return err
			}

			itemType := args[0]
			if _, ok := catalog.Find(itemType); !ok {
				return fmt.Errorf("unknown item type %q (see: bitcarousel catalog)", itemType)
			}

			for i := 0; i < count; i++ {
				next, placed, err := eng.Place(d, ring, itemType)
				if err != nil {
					if i == 0 {
						return reportEngineError(err)
					}
					// Keep what was placed so far; a partly filled batch
					// is a committed result, not a failure.
					if saveErr := saveDesign(d); saveErr != nil {
						return saveErr
					}
					printWarning("Placed %d of %d before running out of room: %v", i, count, err)
					return nil
				}
				d = next
				logger.Debug("placed item", "id", placed.ID, "ring", ring,
					"radius", placed.Radius, "angle", placed.Angle)
				printSuccess("Placed %s as %s at r=%.1fmm, %.1f°", itemType, placed.ID, placed.Radius, placed.Angle)
			}

			return saveDesign(d)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of sockets to place")
	return cmd
}

// newMoveCmd creates the "move" command.
func newMoveCmd() *cobra.Command {
	var ring int

	cmd := &cobra.Command{
		Use:   "move <id> <radius> <angle>",
		Short: "Move a placed socket to a new position",
		Long:  `Move a placed socket. The position snaps to the destination ring's canonical radius, and on gridded rings to the nearest slot angle.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			radius, err := parseFloatArg(args[1], "radius")
			if err != nil {
				return err
			}
			var angle float64
			if _, err := fmt.Sscanf(args[2], "%f", &angle); err != nil {
				return fmt.Errorf("invalid angle %q", args[2])
			}

			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, _, err := newEngine()
			if err != nil {
				return err
			}

			destRing := ring
			if !cmd.Flags().Changed("ring") {
				item, ok := d.FindItem(args[0])
				if !ok {
					return fmt.Errorf("no item with id %q", args[0])
				}
				destRing = item.Ring
			}

			next, moved, err := eng.Relocate(d, args[0], radius, angle, destRing)
			if err != nil {
				return reportEngineError(err)
			}
			if err := saveDesign(next); err != nil {
				return err
			}
			printSuccess("Moved %s to ring %d at r=%.1fmm, %.1f°", moved.ID, moved.Ring, moved.Radius, moved.Angle)
			return nil
		},
	}

	cmd.Flags().IntVar(&ring, "ring", 0, "destination ring (default: keep current ring)")
	return cmd
}

// newRemoveCmd creates the "remove" command.
func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a placed socket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, _, err := newEngine()
			if err != nil {
				return err
			}

			next, err := eng.Remove(d, args[0])
			if err != nil {
				return reportEngineError(err)
			}
			if err := saveDesign(next); err != nil {
				return err
			}
			printSuccess("Removed %s", args[0])
			return nil
		},
	}
}

// newCenterCmd creates the "center" command.
func newCenterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "center [item-type]",
		Short: "Set or clear the center well item",
		Long:  `Set the item occupying the stand's center. Rings are pushed outward if the new center requires it. With no argument the center is cleared; ring radii are never shrunk.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, catalog, err := newEngine()
			if err != nil {
				return err
			}

			itemType := ""
			if len(args) == 1 {
				itemType = args[0]
				if _, ok := catalog.Find(itemType); !ok {
					return fmt.Errorf("unknown item type %q (see: bitcarousel catalog)", itemType)
				}
			}

			next, err := eng.SetCenterItem(d, itemType)
			if err != nil {
				return reportEngineError(err)
			}
			if err := saveDesign(next); err != nil {
				return err
			}
			if itemType == "" {
				printSuccess("Cleared the center well")
			} else {
				printSuccess("Center well set to %s", itemType)
			}
			return nil
		},
	}
}
