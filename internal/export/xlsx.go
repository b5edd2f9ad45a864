package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// BOMRow is one aggregated line of the bill of materials.
type BOMRow struct {
	ItemType string
	Label    string
	Shape    string
	Length   float64
	Diameter float64
	Quantity int
}

// CollectBOM aggregates the design's placed items (and center well) into
// one row per item type, sorted by type key.
func CollectBOM(d model.Design, catalog model.Catalog) []BOMRow {
	counts := map[string]int{}
	for _, it := range d.Items {
		counts[it.ItemType]++
	}
	if d.Center != "" {
		counts[d.Center]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]BOMRow, 0, len(keys))
	for _, k := range keys {
		row := BOMRow{ItemType: k, Label: k, Quantity: counts[k]}
		if spec, ok := catalog.Find(k); ok {
			row.Label = spec.Label
			row.Shape = string(spec.Shape)
			row.Length = spec.Length
			row.Diameter = spec.Diameter
		}
		rows = append(rows, row)
	}
	return rows
}

// BOM writes an XLSX workbook with two sheets: an aggregated bill of
// materials and a full socket list with positions.
func BOM(path string, d model.Design, catalog model.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	const bomSheet = "BOM"
	if err := f.SetSheetName("Sheet1", bomSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	bomHeaders := []string{"Item", "Type", "Shape", "Length (mm)", "Diameter (mm)", "Quantity"}
	if err := writeRow(f, bomSheet, 1, toCells(bomHeaders)); err != nil {
		return err
	}
	if err := f.SetCellStyle(bomSheet, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range CollectBOM(d, catalog) {
		cells := []interface{}{row.Label, row.ItemType, row.Shape, row.Length, row.Diameter, row.Quantity}
		if err := writeRow(f, bomSheet, i+2, cells); err != nil {
			return err
		}
	}

	const socketSheet = "Sockets"
	if _, err := f.NewSheet(socketSheet); err != nil {
		return fmt.Errorf("failed to add socket sheet: %w", err)
	}

	socketHeaders := []string{"ID", "Item", "Ring", "Radius (mm)", "Angle (deg)"}
	if err := writeRow(f, socketSheet, 1, toCells(socketHeaders)); err != nil {
		return err
	}
	if err := f.SetCellStyle(socketSheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	items := append([]model.PlacedItem(nil), d.Items...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Ring != items[j].Ring {
			return items[i].Ring < items[j].Ring
		}
		return items[i].Angle < items[j].Angle
	})
	for i, it := range items {
		label := it.ItemType
		if spec, ok := catalog.Find(it.ItemType); ok {
			label = spec.Label
		}
		cells := []interface{}{it.ID, label, it.Ring, it.Radius, it.Angle}
		if err := writeRow(f, socketSheet, i+2, cells); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, v := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("bad cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", name, err)
		}
	}
	return nil
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
