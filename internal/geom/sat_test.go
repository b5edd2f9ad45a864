package geom

import (
	"math"
	"testing"
)

func TestCircleCircleOverlap(t *testing.T) {
	tests := []struct {
		name     string
		aX, aY   float64
		aR       float64
		bX, bY   float64
		bR       float64
		expected bool
	}{
		{"concentric", 0, 0, 2, 0, 0, 1, true},
		{"overlapping", 0, 0, 2, 3, 0, 2, true},
		{"touching", 0, 0, 2, 4, 0, 2, true},
		{"separated", 0, 0, 2, 4.01, 0, 2, false},
		{"diagonal separated", 0, 0, 1, 2, 2, 1, false},
		{"diagonal overlapping", 0, 0, 1.5, 2, 2, 1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := CircleHitbox(Vec2{tt.aX, tt.aY}, tt.aR)
			b := CircleHitbox(Vec2{tt.bX, tt.bY}, tt.bR)
			if got := Overlaps(a, b); got != tt.expected {
				t.Errorf("Overlaps = %v, want %v", got, tt.expected)
			}
			if got := Overlaps(b, a); got != tt.expected {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestQuadQuadOverlap(t *testing.T) {
	axisAligned := func(cx, cy, halfW, halfH float64) Hitbox {
		return BoxHitbox(Vec2{cx, cy}, Vec2{1, 0}, halfW, halfH)
	}

	a := axisAligned(0, 0, 2, 1)

	if !Overlaps(a, axisAligned(1, 0, 2, 1)) {
		t.Error("overlapping boxes should collide")
	}
	if Overlaps(a, axisAligned(10, 0, 2, 1)) {
		t.Error("distant boxes should not collide")
	}
	if !Overlaps(a, axisAligned(4, 0, 2, 1)) {
		t.Error("edge-touching boxes should count as colliding")
	}
	if Overlaps(a, axisAligned(4.1, 0, 2, 1)) {
		t.Error("boxes with a gap should not collide")
	}
}

func TestQuadQuadRotatedNeedsSAT(t *testing.T) {
	// Two boxes whose axis-aligned bounding boxes overlap but which are
	// separated along a rotated axis. Only a real SAT test gets this right.
	a := BoxHitbox(Vec2{0, 0}, Vec2{1, 0}, 1, 1)
	diag := UnitAt(45)
	b := BoxHitbox(Vec2{2.2, 2.2}, diag, 1, 0.2)

	if Overlaps(a, b) {
		t.Error("rotated box is separated along its normal, must not collide")
	}

	c := BoxHitbox(Vec2{1.2, 1.2}, diag, 1, 0.2)
	if !Overlaps(a, c) {
		t.Error("rotated box intersecting the corner must collide")
	}
}

func TestRhombusOverlap(t *testing.T) {
	// Rhombus with vertices 1mm out along each axis. A box just beyond the
	// rhombus corner fits closer than its bounding box would allow.
	r := RhombusHitbox(Vec2{0, 0}, Vec2{1, 0}, 1, 1)
	box := BoxHitbox(Vec2{1.2, 1.2}, Vec2{1, 0}, 0.5, 0.5)
	if Overlaps(r, box) {
		t.Error("box beyond the rhombus diagonal edge must not collide")
	}

	closer := BoxHitbox(Vec2{0.6, 0.6}, Vec2{1, 0}, 0.5, 0.5)
	if !Overlaps(r, closer) {
		t.Error("box crossing the rhombus edge must collide")
	}
}

func TestCircleQuadOverlap(t *testing.T) {
	q := BoxHitbox(Vec2{0, 0}, Vec2{1, 0}, 2, 1)

	if !Overlaps(CircleHitbox(Vec2{0, 0}, 0.5), q) {
		t.Error("circle inside quad must collide")
	}
	if !Overlaps(CircleHitbox(Vec2{2.5, 0}, 1), q) {
		t.Error("circle crossing the right edge must collide")
	}
	if Overlaps(CircleHitbox(Vec2{4, 0}, 1), q) {
		t.Error("circle clear of the quad must not collide")
	}
}

func TestCircleQuadCornerCase(t *testing.T) {
	// Circle diagonally off a corner: edge-normal projections overlap but
	// the vertex axis separates. This is the case that requires the extra
	// center-to-nearest-vertex axis.
	q := BoxHitbox(Vec2{0, 0}, Vec2{1, 0}, 1, 1)

	// Corner at (1,1). Center (1.4,1.4) overlaps the quad on both edge-normal
	// axes, but its distance to the corner is 0.566 > 0.5.
	far := CircleHitbox(Vec2{1.4, 1.4}, 0.5)
	if Overlaps(far, q) {
		t.Error("circle past the corner must not collide")
	}

	near := CircleHitbox(Vec2{1.2, 1.2}, 0.5)
	if !Overlaps(near, q) {
		t.Error("circle reaching the corner must collide")
	}
}

func TestVecHelpers(t *testing.T) {
	u := UnitAt(90)
	if math.Abs(u.X) > 1e-12 || math.Abs(u.Y-1) > 1e-12 {
		t.Errorf("UnitAt(90) = %+v, want (0,1)", u)
	}

	p := FromPolar(2, 180)
	if math.Abs(p.X+2) > 1e-12 || math.Abs(p.Y) > 1e-12 {
		t.Errorf("FromPolar(2,180) = %+v, want (-2,0)", p)
	}

	perp := Vec2{1, 0}.Perp()
	if perp != (Vec2{0, 1}) {
		t.Errorf("Perp = %+v, want (0,1)", perp)
	}

	if n := (Vec2{3, 4}).Normalized(); math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalized length = %v, want 1", n.Len())
	}
	if z := (Vec2{}).Normalized(); z != (Vec2{}) {
		t.Errorf("Normalized zero vector = %+v, want zero", z)
	}
}
