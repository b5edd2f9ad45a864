package model

import (
	"math"
	"testing"
)

func TestShapeKindValid(t *testing.T) {
	for _, k := range []ShapeKind{ShapeCircle, ShapeRect, ShapeTube, ShapeDiamond} {
		if !k.Valid() {
			t.Errorf("shape %q should be valid", k)
		}
	}
	if ShapeKind("hexagon").Valid() {
		t.Error("unknown shape should not be valid")
	}
}

func TestItemSpecSpans(t *testing.T) {
	rect := ItemSpec{Key: "r", Shape: ShapeRect, Length: 10, Diameter: 4}
	if got := rect.TangentialHalfSpan(); got != 5 {
		t.Errorf("rect tangential half-span = %v, want 5", got)
	}
	if got := rect.RadialHalfSpan(); got != 2 {
		t.Errorf("rect radial half-span = %v, want 2", got)
	}

	circle := ItemSpec{Key: "c", Shape: ShapeCircle, Length: 3, Diameter: 3}
	if got := circle.TangentialHalfSpan(); got != 1.5 {
		t.Errorf("circle tangential half-span = %v, want 1.5", got)
	}

	diamond := ItemSpec{Key: "d", Shape: ShapeDiamond, Length: 5.66, Diameter: 4}
	if got := diamond.TangentialHalfSpan(); got != 2 {
		t.Errorf("diamond tangential half-span = %v, want 2", got)
	}
}

func TestItemSpecCircumRadius(t *testing.T) {
	circle := ItemSpec{Shape: ShapeCircle, Length: 10, Diameter: 10}
	if got := circle.CircumRadius(); got != 5 {
		t.Errorf("circle circumradius = %v, want 5", got)
	}

	diamond := ItemSpec{Shape: ShapeDiamond, Length: 5.66, Diameter: 4}
	if got := diamond.CircumRadius(); got != 2.83 {
		t.Errorf("diamond circumradius = %v, want 2.83", got)
	}

	rect := ItemSpec{Shape: ShapeRect, Length: 6, Diameter: 8}
	want := math.Hypot(3, 4) // 5
	if got := rect.CircumRadius(); math.Abs(got-want) > 1e-12 {
		t.Errorf("rect circumradius = %v, want %v", got, want)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{365, 5},
		{-10, 350},
		{-370, 350},
		{720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRingSlotAngle(t *testing.T) {
	r := Ring{Radius: 8, Divisions: 12}
	if got := r.SlotAngle(0); got != 0 {
		t.Errorf("slot 0 = %v, want 0", got)
	}
	if got := r.SlotAngle(3); got != 90 {
		t.Errorf("slot 3 = %v, want 90", got)
	}
	continuous := Ring{Radius: 8}
	if got := continuous.SlotAngle(5); got != 0 {
		t.Errorf("continuous ring slot angle = %v, want 0", got)
	}
}

func TestDesignCloneIsDeep(t *testing.T) {
	d := NewDesign("original")
	d.Rings = append(d.Rings, Ring{Radius: 8, Divisions: 12})
	d.Items = append(d.Items, PlacedItem{ID: "a", ItemType: "c1", Radius: 8})

	c := d.Clone()
	c.Rings[0].Radius = 99
	c.Items[0].Radius = 99

	if d.Rings[0].Radius != 8 {
		t.Error("clone shares ring storage with the original")
	}
	if d.Items[0].Radius != 8 {
		t.Error("clone shares item storage with the original")
	}
}

func TestDesignLookups(t *testing.T) {
	d := NewDesign("t")
	d.Rings = append(d.Rings, Ring{Radius: 8}, Ring{Radius: 14})
	d.Items = append(d.Items,
		PlacedItem{ID: "a", Ring: 0},
		PlacedItem{ID: "b", Ring: 1},
		PlacedItem{ID: "c", Ring: 1},
	)

	if got := len(d.RingItems(1)); got != 2 {
		t.Errorf("RingItems(1) returned %d items, want 2", got)
	}
	if _, ok := d.FindItem("b"); !ok {
		t.Error("FindItem failed to find existing item")
	}
	if _, ok := d.FindItem("zz"); ok {
		t.Error("FindItem found a non-existent item")
	}
	if d.HasRing(2) || d.HasRing(-1) {
		t.Error("HasRing accepted an out-of-range index")
	}
}
