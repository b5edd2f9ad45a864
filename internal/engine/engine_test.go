package engine

import (
	"fmt"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// seqIDs hands out a fixed id sequence so tests are deterministic.
type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("item-%03d", s.n)
}

func testCatalog() model.Catalog {
	return model.Catalog{Items: []model.ItemSpec{
		{Key: "c1", Label: "1mm pin", Shape: model.ShapeCircle, Length: 1, Diameter: 1},
		{Key: "c2", Label: "2mm pin", Shape: model.ShapeCircle, Length: 2, Diameter: 2},
		{Key: "c10", Label: "10mm well", Shape: model.ShapeCircle, Length: 10, Diameter: 10},
		{Key: "r4", Label: "4mm slot", Shape: model.ShapeRect, Length: 4, Diameter: 2},
		{Key: "d4", Label: "4mm file", Shape: model.ShapeDiamond, Length: 5.66, Diameter: 4},
	}}
}

func newTestEngine() *Engine {
	return &Engine{Catalog: testCatalog(), IDs: &seqIDs{}}
}

// designWithRing builds a one-ring design for tests.
func designWithRing(radius float64, divisions int) model.Design {
	d := model.NewDesign("test")
	d.Rings = append(d.Rings, model.Ring{Radius: radius, Divisions: divisions})
	return d
}
