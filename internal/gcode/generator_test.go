package gcode

import (
	"strings"
	"testing"

	"github.com/bitcarousel/bitcarousel/internal/geom"
	"github.com/bitcarousel/bitcarousel/internal/model"
)

// newTestSettings returns MillSettings suitable for testing with predictable output.
func newTestSettings() model.MillSettings {
	s := model.DefaultSettings()
	s.ToolDiameter = 2.0
	s.FeedRate = 800.0
	s.PlungeRate = 250.0
	s.SpindleSpeed = 18000
	s.SafeZ = 5.0
	s.SocketDepth = 6.0
	s.PassDepth = 6.0
	s.SegmentsPerCircle = 16
	s.Profile = "Generic"
	return s
}

func newTestCatalog() model.Catalog {
	return model.Catalog{Items: []model.ItemSpec{
		{Key: "c6", Label: "6mm bit", Shape: model.ShapeCircle, Length: 6, Diameter: 6},
		{Key: "r10", Label: "wrench", Shape: model.ShapeRect, Length: 10, Diameter: 4},
		{Key: "tiny", Label: "needle", Shape: model.ShapeCircle, Length: 1, Diameter: 1},
	}}
}

func newTestDesign() model.Design {
	d := model.NewDesign("test stand")
	d.Rings = append(d.Rings, model.Ring{Radius: 20, Divisions: 4})
	d.Items = append(d.Items,
		model.PlacedItem{ID: "a", ItemType: "c6", Radius: 20, Angle: 0, Ring: 0},
		model.PlacedItem{ID: "b", ItemType: "r10", Radius: 20, Angle: 90, Ring: 0},
	)
	return d
}

func TestGenerateHeaderAndFooter(t *testing.T) {
	gen := New(newTestSettings(), newTestCatalog())
	code := gen.Generate(newTestDesign())

	if !strings.Contains(code, "; BitCarousel GCode: test stand") {
		t.Error("expected header comment with design name")
	}
	if !strings.Contains(code, "G90") || !strings.Contains(code, "G21") {
		t.Error("expected Generic profile start codes G90/G21")
	}
	if !strings.Contains(code, "M3 S18000") {
		t.Error("expected spindle start with configured RPM")
	}
	if !strings.Contains(code, "M5") || !strings.Contains(code, "M2") {
		t.Error("expected end codes M5 and M2")
	}
	if strings.Contains(code, "[SafeZ]") {
		t.Error("[SafeZ] placeholder must be substituted in end codes")
	}
	if !strings.Contains(code, "G0 Z5.000") {
		t.Error("expected safe-Z substitution at the profile's decimal places")
	}
}

func TestGenerateOneSocketPerItem(t *testing.T) {
	gen := New(newTestSettings(), newTestCatalog())
	code := gen.Generate(newTestDesign())

	if n := strings.Count(code, "--- Socket"); n != 2 {
		t.Errorf("expected 2 socket sections, got %d", n)
	}
	if !strings.Contains(code, "6mm bit") || !strings.Contains(code, "wrench") {
		t.Error("expected socket comments labeled with catalog labels")
	}
}

func TestGenerateIncludesCenterWell(t *testing.T) {
	d := newTestDesign()
	d.Center = "c6"

	gen := New(newTestSettings(), newTestCatalog())
	code := gen.Generate(d)

	if n := strings.Count(code, "--- Socket"); n != 3 {
		t.Errorf("expected 3 socket sections with a center well, got %d", n)
	}
	if !strings.Contains(code, "center 6mm bit") {
		t.Error("expected center well socket to be labeled")
	}
}

func TestGenerateSkipsUnknownAndTooSmallSockets(t *testing.T) {
	d := model.NewDesign("t")
	d.Rings = append(d.Rings, model.Ring{Radius: 20})
	d.Items = append(d.Items,
		model.PlacedItem{ID: "a", ItemType: "ghost", Radius: 20, Ring: 0},
		// 1mm socket with a 2mm tool cannot be milled.
		model.PlacedItem{ID: "b", ItemType: "tiny", Radius: 20, Angle: 180, Ring: 0},
	)

	gen := New(newTestSettings(), newTestCatalog())
	code := gen.Generate(d)

	if strings.Contains(code, "--- Socket") {
		t.Error("expected no socket sections for unknown or undersized items")
	}
}

func TestGenerateMultiplePasses(t *testing.T) {
	settings := newTestSettings()
	settings.SocketDepth = 12.0
	settings.PassDepth = 5.0 // 3 passes, last one shallow

	d := model.NewDesign("t")
	d.Rings = append(d.Rings, model.Ring{Radius: 20})
	d.Items = append(d.Items, model.PlacedItem{ID: "a", ItemType: "c6", Radius: 20, Ring: 0})

	gen := New(settings, newTestCatalog())
	code := gen.Generate(d)

	if !strings.Contains(code, "Pass 1/3") || !strings.Contains(code, "Pass 3/3") {
		t.Error("expected 3 passes")
	}
	if !strings.Contains(code, "depth=12.00mm") {
		t.Error("final pass should be clamped to the socket depth")
	}
	if !strings.Contains(code, "Z-12.000") {
		t.Error("expected final plunge to -12mm")
	}
}

func TestSocketLoopGeometry(t *testing.T) {
	gen := New(newTestSettings(), newTestCatalog())

	// A 6mm circle with a 2mm tool leaves a 2mm toolpath radius.
	spec, _ := gen.Catalog.Find("c6")
	loop := gen.socketLoop(spec, geom.Vec2{}, 0)
	if len(loop) != 16 {
		t.Fatalf("expected 16 segments, got %d", len(loop))
	}
	for _, p := range loop {
		r := p.Len()
		if r < 1.999 || r > 2.001 {
			t.Errorf("toolpath point at radius %v, want 2", r)
		}
	}

	// Too small for the tool.
	tiny, _ := gen.Catalog.Find("tiny")
	if loop := gen.socketLoop(tiny, geom.Vec2{}, 0); loop != nil {
		t.Error("expected nil loop for socket smaller than the tool")
	}
}
