package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// newProfileCmd creates the "profile" command group.
func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage CNC machine profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listProfiles()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available machine profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listProfiles()
		},
	})
	cmd.AddCommand(newProfileAddCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a custom machine profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCustomProfiles(); err != nil {
				return err
			}
			if err := model.RemoveCustomProfile(args[0]); err != nil {
				return err
			}
			if err := project.SaveCustomProfilesToDefault(model.CustomProfiles); err != nil {
				return err
			}
			printSuccess("Removed profile %q", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "export <name> <file>",
		Short: "Export a machine profile for sharing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCustomProfiles(); err != nil {
				return err
			}
			p := model.GetProfile(args[0])
			if p.Name != args[0] {
				return fmt.Errorf("no profile %q", args[0])
			}
			if err := project.ExportProfile(args[1], p); err != nil {
				return err
			}
			printSuccess("Exported profile %q", p.Name)
			printFile(args[1])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Import a machine profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCustomProfiles(); err != nil {
				return err
			}
			p, err := project.ImportProfile(args[0])
			if err != nil {
				return err
			}
			if err := model.AddCustomProfile(p); err != nil {
				return err
			}
			if err := project.SaveCustomProfilesToDefault(model.CustomProfiles); err != nil {
				return err
			}
			printSuccess("Imported profile %q", p.Name)
			return nil
		},
	})

	return cmd
}

func newProfileAddCmd() *cobra.Command {
	var decimals int
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom machine profile based on the Generic defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadCustomProfiles(); err != nil {
				return err
			}
			p := model.NewCustomProfile(args[0])
			p.Description = description
			if decimals > 0 {
				p.DecimalPlaces = decimals
			}
			if err := model.AddCustomProfile(p); err != nil {
				return err
			}
			if err := project.SaveCustomProfilesToDefault(model.CustomProfiles); err != nil {
				return err
			}
			printSuccess("Added profile %q", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "profile description")
	cmd.Flags().IntVar(&decimals, "decimals", 0, "coordinate decimal places (default from Generic)")
	return cmd
}

func listProfiles() error {
	if err := loadCustomProfiles(); err != nil {
		return err
	}
	fmt.Println(StyleTitle.Render("Machine profiles"))
	for _, p := range model.AllProfiles() {
		kind := "custom"
		if p.IsBuiltIn {
			kind = "built-in"
		}
		printDetail("%-12s %-10s %s", p.Name, kind, p.Description)
	}
	return nil
}

// loadCustomProfiles installs saved custom profiles into the model registry.
func loadCustomProfiles() error {
	profiles, err := project.LoadCustomProfilesFromDefault()
	if err != nil {
		return err
	}
	model.CustomProfiles = profiles
	return nil
}
