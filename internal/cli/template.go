package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// newTemplateCmd creates the "template" command group.
func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable design templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			if len(store.Templates) == 0 {
				printInfo("No templates saved")
				return nil
			}
			fmt.Println(StyleTitle.Render("Templates"))
			for _, t := range store.Templates {
				printDetail("%-8s %-24s %d rings, %d sockets  %s",
					t.ID, t.Name, len(t.Design.Rings), len(t.Design.Items), t.Description)
			}
			return nil
		},
	})
	cmd.AddCommand(newTemplateSaveCmd())
	cmd.AddCommand(newTemplateApplyCmd())
	cmd.AddCommand(newTemplateDeleteCmd())

	return cmd
}

func newTemplateSaveCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current design as a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign()
			if err != nil {
				return err
			}
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}

			t := model.NewDesignTemplate(args[0], description, d)
			store.Add(t)
			if err := project.SaveDefaultTemplates(store); err != nil {
				return err
			}
			printSuccess("Saved template %q (%s)", t.Name, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func newTemplateApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <name-or-id> <design-name>",
		Short: "Create a new design from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}

			t := store.FindByID(args[0])
			if t == nil {
				t = store.FindByName(args[0])
			}
			if t == nil {
				return fmt.Errorf("no template %q", args[0])
			}

			d := t.ToDesign(args[1])
			if err := saveDesign(d); err != nil {
				return err
			}
			printSuccess("Created %q from template %q", d.Name, t.Name)
			printFile(designFile)
			return nil
		},
	}
}

func newTemplateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadDefaultTemplates()
			if err != nil {
				return err
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("no template with id %q", args[0])
			}
			if err := project.SaveDefaultTemplates(store); err != nil {
				return err
			}
			printSuccess("Deleted template %s", args[0])
			return nil
		},
	}
}
