package cli

import (
	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/export"
	"github.com/bitcarousel/bitcarousel/internal/model"
)

// newExportCmd creates the "export" command group.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the design to shop-floor formats",
	}

	cmd.AddCommand(newExportFileCmd("dxf", "stand.dxf",
		"Write a DXF drawing of the blank, rings, and socket outlines",
		func(path string, d model.Design, c model.Catalog) error {
			return export.DXF(path, d, c)
		}))
	cmd.AddCommand(newExportFileCmd("pdf", "stand.pdf",
		"Write a PDF spec sheet with a layout diagram and socket table",
		func(path string, d model.Design, c model.Catalog) error {
			return export.PDF(path, d, c)
		}))
	cmd.AddCommand(newExportFileCmd("labels", "labels.pdf",
		"Write a PDF of QR-coded socket labels (Avery 5160 layout)",
		func(path string, d model.Design, c model.Catalog) error {
			return export.Labels(path, d, c)
		}))
	cmd.AddCommand(newExportFileCmd("bom", "bom.xlsx",
		"Write an XLSX bill of materials",
		func(path string, d model.Design, c model.Catalog) error {
			return export.BOM(path, d, c)
		}))

	return cmd
}

// newExportFileCmd builds one export subcommand. All exporters share the
// same shape: load the design, write one output file.
func newExportFileCmd(name, defaultOut, short string, write func(string, model.Design, model.Catalog) error) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   name + " [flags]",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDesign()
			if err != nil {
				return err
			}
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}

			if err := write(out, d, catalog); err != nil {
				return err
			}
			printSuccess("Exported %s", name)
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", defaultOut, "output file path")
	return cmd
}
