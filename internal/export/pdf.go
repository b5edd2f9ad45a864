// Package export writes stand designs out to shop-floor formats: a PDF spec
// sheet, QR-coded socket labels, a DXF drawing, and an XLSX bill of materials.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/bitcarousel/bitcarousel/internal/geom"
	"github.com/bitcarousel/bitcarousel/internal/model"
)

// ringColor represents an RGB color for a ring's items.
type ringColor struct {
	R, G, B int
}

var ringColors = []ringColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	drawAreaSize = 150.0
)

// PDF generates a spec sheet for the design: a scaled top-down diagram of
// the rings and sockets followed by an item table.
func PDF(path string, d model.Design, catalog model.Catalog) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, d, catalog)
	renderDiagram(pdf, d, catalog)
	renderItemTable(pdf, d, catalog, drawAreaTop+drawAreaSize+10)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
		"Generated by BitCarousel - Rotary Tool Stand Designer", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, d model.Design, catalog model.Catalog) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	diameter := designDiameter(d, catalog)
	title := fmt.Sprintf("%s (Ø %.1f mm)", d.Name, diameter)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Rings: %d | Sockets: %d", len(d.Rings), len(d.Items))
	if d.Center != "" {
		stats += " | Center well: " + d.Center
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")
}

// renderDiagram draws the stand top-down: construction circles for each ring
// and a filled marker per socket, colored by ring.
func renderDiagram(pdf *fpdf.Fpdf, d model.Design, catalog model.Catalog) {
	diameter := designDiameter(d, catalog)
	if diameter <= 0 {
		diameter = 10
	}

	scale := drawAreaSize / diameter
	cx := marginLeft + (pageWidth-marginLeft-marginRight)/2
	cy := drawAreaTop + drawAreaSize/2

	// Blank outline
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Circle(cx, cy, diameter/2*scale, "FD")

	// Ring construction circles
	pdf.SetLineWidth(0.2)
	for i, r := range d.Rings {
		col := ringColors[i%len(ringColors)]
		pdf.SetDrawColor(col.R, col.G, col.B)
		pdf.Circle(cx, cy, r.Radius*scale, "D")
	}

	// Center well
	if d.Center != "" {
		if spec, ok := catalog.Find(d.Center); ok {
			pdf.SetFillColor(255, 255, 255)
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
			pdf.Circle(cx, cy, spec.CircumRadius()*scale, "FD")
		}
	}

	// Sockets. The PDF Y axis points down, so flip Y.
	for _, it := range d.Items {
		spec, ok := catalog.Find(it.ItemType)
		if !ok {
			continue
		}
		col := ringColors[it.Ring%len(ringColors)]
		p := geom.FromPolar(it.Radius, it.Angle)
		px := cx + p.X*scale
		py := cy - p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Circle(px, py, math.Max(spec.CircumRadius()*scale, 0.8), "FD")
	}

	// Diameter annotation below the diagram.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	label := fmt.Sprintf("Ø %.1f mm", diameter)
	labelW := pdf.GetStringWidth(label)
	pdf.SetXY(cx-labelW/2, drawAreaTop+drawAreaSize+2)
	pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderItemTable lists the placed sockets grouped by ring.
func renderItemTable(pdf *fpdf.Fpdf, d model.Design, catalog model.Catalog, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Sockets", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 60, 30, 30, 25, 20}
	headers := []string{"Ring", "Item", "Shape", "Size", "Radius", "Angle"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	items := append([]model.PlacedItem(nil), d.Items...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Ring != items[j].Ring {
			return items[i].Ring < items[j].Ring
		}
		return items[i].Angle < items[j].Angle
	})

	pdf.SetFont("Helvetica", "", 9)
	for i, it := range items {
		label, shape, size := it.ItemType, "?", "?"
		if spec, ok := catalog.Find(it.ItemType); ok {
			label = spec.Label
			shape = string(spec.Shape)
			size = fmt.Sprintf("%.1f x %.1f", spec.Length, spec.Diameter)
		}
		rowData := []string{
			fmt.Sprintf("%d", it.Ring),
			label,
			shape,
			size,
			fmt.Sprintf("%.1f mm", it.Radius),
			fmt.Sprintf("%.1f°", it.Angle),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
}

// designDiameter returns the footprint diameter including socket overhang.
func designDiameter(d model.Design, catalog model.Catalog) float64 {
	var max float64
	for _, it := range d.Items {
		reach := it.Radius
		if spec, ok := catalog.Find(it.ItemType); ok {
			reach += spec.CircumRadius()
		}
		max = math.Max(max, reach)
	}
	for _, r := range d.Rings {
		max = math.Max(max, r.Radius)
	}
	if d.Center != "" {
		if spec, ok := catalog.Find(d.Center); ok {
			max = math.Max(max, spec.CircumRadius())
		}
	}
	return 2 * max
}
