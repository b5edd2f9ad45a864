package cli

import (
	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// newBackupCmd creates the "backup" command group for moving the whole
// app state (config, catalog, profiles, templates) between machines.
func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import all settings, catalog entries, profiles, and templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write all application data to a single backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup := project.BackupData{Config: model.DefaultAppConfig()}

			if path, err := project.DefaultConfigPath(); err == nil {
				if cfg, err := project.LoadAppConfig(path); err == nil {
					backup.Config = cfg
				}
			}
			if path, err := project.DefaultCatalogPath(); err == nil {
				if user, err := project.LoadUserCatalog(path); err == nil {
					backup.Catalog = user
				}
			}
			if profiles, err := project.LoadCustomProfilesFromDefault(); err == nil {
				backup.Profiles = profiles
			}
			if store, err := project.LoadDefaultTemplates(); err == nil {
				backup.Templates = store
			}

			if err := project.ExportAllData(args[0], backup); err != nil {
				return err
			}
			printSuccess("Exported %d catalog entries, %d profiles, %d templates",
				len(backup.Catalog.Items), len(backup.Profiles), len(backup.Templates.Templates))
			printFile(args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Restore application data from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}

			path, err := project.DefaultConfigPath()
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(path, backup.Config); err != nil {
				return err
			}
			catalogPath, err := project.DefaultCatalogPath()
			if err != nil {
				return err
			}
			if err := project.SaveUserCatalog(catalogPath, backup.Catalog); err != nil {
				return err
			}
			if err := project.SaveCustomProfilesToDefault(backup.Profiles); err != nil {
				return err
			}
			if err := project.SaveDefaultTemplates(backup.Templates); err != nil {
				return err
			}

			printSuccess("Restored backup from %s (created %s)", args[0], backup.CreatedAt)
			return nil
		},
	})

	return cmd
}
