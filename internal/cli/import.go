package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bitcarousel/bitcarousel/internal/importer"
)

// newImportCmd creates the "import" command.
func newImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <list-file>",
		Short: "Place sockets from a CSV or XLSX item list",
		Long:  `Import a placement list with columns for item type, ring index, and quantity. CSV delimiters and column order are detected automatically. Each request is placed through the normal placement rules; rows that no longer fit are reported and skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			d, err := loadDesign()
			if err != nil {
				return err
			}
			eng, catalog, err := newEngine()
			if err != nil {
				return err
			}

			var result importer.ImportResult
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".xlsx", ".xls":
				result = importer.ImportExcel(args[0], catalog)
			default:
				result = importer.ImportCSV(args[0], catalog)
			}

			for _, w := range result.Warnings {
				printWarning("%s", w)
			}
			for _, e := range result.Errors {
				printError("%s", e)
			}
			if len(result.Requests) == 0 {
				return fmt.Errorf("nothing to import")
			}

			placed, failed := 0, 0
			for _, req := range result.Requests {
				for i := 0; i < req.Quantity; i++ {
					next, item, err := eng.Place(d, req.Ring, req.ItemType)
					if err != nil {
						printWarning("Skipped %s on ring %d: %v", req.ItemType, req.Ring, err)
						failed++
						break
					}
					d = next
					placed++
					logger.Debug("imported item", "id", item.ID, "type", req.ItemType, "ring", req.Ring)
				}
			}

			if dryRun {
				printInfo("Dry run: %d sockets would be placed, %d requests failed", placed, failed)
				return nil
			}
			if placed > 0 {
				if err := saveDesign(d); err != nil {
					return err
				}
			}
			printSuccess("Placed %d sockets (%d requests failed)", placed, failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be placed without saving")
	return cmd
}
