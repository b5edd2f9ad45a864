package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// newCatalogCmd creates the "catalog" command group.
func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the item catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCatalog()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all known item types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCatalog()
		},
	})
	cmd.AddCommand(newCatalogAddCmd())
	cmd.AddCommand(newCatalogRemoveCmd())

	return cmd
}

func listCatalog() error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render("Item catalog"))
	for _, s := range catalog.Items {
		printDetail("%-18s %-26s %-8s %5.1f x %.1f mm", s.Key, s.Label, s.Shape, s.Length, s.Diameter)
	}
	return nil
}

func newCatalogAddCmd() *cobra.Command {
	var label, shape string
	var length, diameter float64

	cmd := &cobra.Command{
		Use:   "add <key>",
		Short: "Add a custom item type to the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := model.ItemSpec{
				Key:      args[0],
				Label:    label,
				Shape:    model.ShapeKind(shape),
				Length:   length,
				Diameter: diameter,
			}
			if spec.Label == "" {
				spec.Label = spec.Key
			}

			path, err := project.DefaultCatalogPath()
			if err != nil {
				return err
			}
			user, err := project.LoadUserCatalog(path)
			if err != nil {
				return err
			}
			if _, ok := model.BuiltinCatalog().Find(spec.Key); ok {
				return fmt.Errorf("key %q is a built-in item", spec.Key)
			}
			if err := user.Add(spec); err != nil {
				return err
			}
			if err := project.SaveUserCatalog(path, user); err != nil {
				return err
			}
			printSuccess("Added %s (%s, %.1f x %.1f mm)", spec.Key, spec.Shape, spec.Length, spec.Diameter)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "display name (default: the key)")
	cmd.Flags().StringVar(&shape, "shape", "circle", "socket shape: circle, rect, tube, diamond")
	cmd.Flags().Float64Var(&length, "length", 0, "item length in mm")
	cmd.Flags().Float64Var(&diameter, "diameter", 0, "item diameter in mm")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("diameter")
	return cmd
}

func newCatalogRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a custom item type from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := project.DefaultCatalogPath()
			if err != nil {
				return err
			}
			user, err := project.LoadUserCatalog(path)
			if err != nil {
				return err
			}
			if !user.Remove(args[0]) {
				if _, ok := model.BuiltinCatalog().Find(args[0]); ok {
					return fmt.Errorf("%q is a built-in item and cannot be removed", args[0])
				}
				return fmt.Errorf("no custom item %q", args[0])
			}
			if err := project.SaveUserCatalog(path, user); err != nil {
				return err
			}
			printSuccess("Removed %s", args[0])
			return nil
		},
	}
}
