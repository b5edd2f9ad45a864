package model

import "math"

// BlankEstimate holds the result of a round-blank purchasing calculation.
type BlankEstimate struct {
	DesignDiameter float64 `json:"design_diameter"` // Overall design diameter (mm)
	EdgeMargin     float64 `json:"edge_margin"`     // Extra material beyond the design edge (mm)
	BlankDiameter  float64 `json:"blank_diameter"`  // Recommended blank diameter (mm)
	BlankArea      float64 `json:"blank_area"`      // Blank face area (sq mm)
	Thickness      float64 `json:"thickness"`       // Blank thickness (mm)
	Volume         float64 `json:"volume"`          // Material volume (cubic mm)
	PricePerSqM    float64 `json:"price_per_sqm"`   // Material price per square meter
	EstimatedCost  float64 `json:"estimated_cost"`  // Cost of the blank face area
}

// sqmmPerSqMeter converts square millimeters to square meters for pricing.
const sqmmPerSqMeter = 1_000_000.0

// CalculateBlankEstimate sizes the round blank a design must be milled from.
// The margin is applied on every side, so the blank diameter grows by twice
// the margin.
func CalculateBlankEstimate(designDiameter, edgeMargin, thickness, pricePerSqM float64) BlankEstimate {
	blankDiameter := designDiameter + 2*edgeMargin
	blankArea := math.Pi * (blankDiameter / 2) * (blankDiameter / 2)
	return BlankEstimate{
		DesignDiameter: designDiameter,
		EdgeMargin:     edgeMargin,
		BlankDiameter:  blankDiameter,
		BlankArea:      blankArea,
		Thickness:      thickness,
		Volume:         blankArea * thickness,
		PricePerSqM:    pricePerSqM,
		EstimatedCost:  blankArea / sqmmPerSqMeter * pricePerSqM,
	}
}

// MillingSummary aggregates the machining work a design represents.
type MillingSummary struct {
	SocketCount      int     `json:"socket_count"`      // Number of sockets to mill (center well included)
	PathLength       float64 `json:"path_length"`       // Single-pass perimeter path length (mm)
	Passes           int     `json:"passes"`            // Depth passes per socket
	TotalPathLength  float64 `json:"total_path_length"` // Path length across all passes (mm)
	EstimatedMinutes float64 `json:"estimated_minutes"` // Feed time plus plunges, no rapids
}

// CalculateMillingSummary estimates total toolpath length and job time for
// milling every socket perimeter of the design. Items whose type is missing
// from the catalog are skipped.
func CalculateMillingSummary(d Design, catalog Catalog, settings MillSettings) MillingSummary {
	var summary MillingSummary
	var pathLen float64

	for _, it := range d.Items {
		spec, ok := catalog.Find(it.ItemType)
		if !ok {
			continue
		}
		summary.SocketCount++
		pathLen += socketPerimeter(spec)
	}
	if d.Center != "" {
		if spec, ok := catalog.Find(d.Center); ok {
			summary.SocketCount++
			pathLen += socketPerimeter(spec)
		}
	}

	passes := 1
	if settings.PassDepth > 0 {
		passes = int(math.Ceil(settings.SocketDepth / settings.PassDepth))
		if passes < 1 {
			passes = 1
		}
	}

	summary.PathLength = pathLen
	summary.Passes = passes
	summary.TotalPathLength = pathLen * float64(passes)

	if settings.FeedRate > 0 {
		summary.EstimatedMinutes = summary.TotalPathLength / settings.FeedRate
	}
	if settings.PlungeRate > 0 {
		plunges := float64(summary.SocketCount * passes)
		summary.EstimatedMinutes += plunges * settings.SocketDepth / settings.PlungeRate
	}
	return summary
}

// socketPerimeter returns the perimeter length of one socket outline.
func socketPerimeter(spec ItemSpec) float64 {
	switch spec.Shape {
	case ShapeCircle:
		return math.Pi * spec.Diameter
	case ShapeDiamond:
		// Rhombus with half-diagonals Diameter/2 on both axes.
		side := math.Hypot(spec.Diameter/2, spec.Diameter/2)
		return 4 * side
	default:
		return 2 * (spec.Length + spec.Diameter)
	}
}
