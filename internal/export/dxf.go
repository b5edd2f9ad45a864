package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/bitcarousel/bitcarousel/internal/geom"
	"github.com/bitcarousel/bitcarousel/internal/model"
)

// DXF writes the design as a 2D drawing with the stand center at the origin.
// The blank outline and socket outlines go on a CUT layer for CAM import;
// ring construction circles go on a separate GUIDE layer so they can be
// toggled off.
func DXF(path string, d model.Design, catalog model.Catalog) error {
	dw := dxf.NewDrawing()

	if _, err := dw.AddLayer("GUIDE", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add guide layer: %w", err)
	}
	for _, r := range d.Rings {
		dw.Circle(0, 0, 0, r.Radius)
	}

	if _, err := dw.AddLayer("CUT", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add cut layer: %w", err)
	}

	// Blank outline
	dw.Circle(0, 0, 0, designDiameter(d, catalog)/2)

	// Center well
	if d.Center != "" {
		if spec, ok := catalog.Find(d.Center); ok {
			drawSocket(dw, spec, geom.Vec2{}, 0)
		}
	}

	// Sockets
	for _, it := range d.Items {
		spec, ok := catalog.Find(it.ItemType)
		if !ok {
			continue
		}
		drawSocket(dw, spec, geom.FromPolar(it.Radius, it.Angle), it.Angle)
	}

	return dw.SaveAs(path)
}

// drawSocket emits one socket outline: a CIRCLE entity for round sockets,
// a closed LWPOLYLINE for quads.
func drawSocket(dw *drawing.Drawing, spec model.ItemSpec, center geom.Vec2, angleDeg float64) {
	u := geom.UnitAt(angleDeg + 90)

	switch spec.Shape {
	case model.ShapeCircle:
		dw.Circle(center.X, center.Y, 0, spec.Diameter/2)
	case model.ShapeDiamond:
		h := geom.RhombusHitbox(center, u, spec.Length/2, spec.Diameter/2)
		drawQuad(dw, h)
	default: // rect, tube
		h := geom.BoxHitbox(center, u, spec.TangentialHalfSpan(), spec.RadialHalfSpan())
		drawQuad(dw, h)
	}
}

func drawQuad(dw *drawing.Drawing, h geom.Hitbox) {
	verts := make([][]float64, 0, 4)
	for _, v := range h.Verts {
		verts = append(verts, []float64{v.X, v.Y})
	}
	dw.LwPolyline(true, verts...)
}
