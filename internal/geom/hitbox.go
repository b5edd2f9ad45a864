package geom

// Hitbox is a collision primitive in absolute coordinates: either a circle
// or a convex quadrilateral. The zero value is an empty circle at the origin.
type Hitbox struct {
	IsCircle bool
	Center   Vec2    // circle center (unused for quads)
	Radius   float64 // circle radius (unused for quads)
	Verts    [4]Vec2 // quad vertices in winding order (unused for circles)
}

// CircleHitbox builds a circular hitbox.
func CircleHitbox(center Vec2, radius float64) Hitbox {
	return Hitbox{IsCircle: true, Center: center, Radius: radius}
}

// QuadHitbox builds a convex quadrilateral hitbox from four vertices
// given in winding order.
func QuadHitbox(a, b, c, d Vec2) Hitbox {
	return Hitbox{Verts: [4]Vec2{a, b, c, d}}
}

// BoxHitbox builds a (possibly rotated) rectangle hitbox centered at center
// with half-extent halfU along the unit vector u and halfV along u rotated
// 90 degrees counter-clockwise.
func BoxHitbox(center Vec2, u Vec2, halfU, halfV float64) Hitbox {
	du := u.Scale(halfU)
	dv := u.Perp().Scale(halfV)
	return QuadHitbox(
		center.Add(du).Add(dv),
		center.Sub(du).Add(dv),
		center.Sub(du).Sub(dv),
		center.Add(du).Sub(dv),
	)
}

// RhombusHitbox builds a rhombus hitbox centered at center with vertices at
// +-halfU along the unit vector u and +-halfV along u rotated 90 degrees
// counter-clockwise.
func RhombusHitbox(center Vec2, u Vec2, halfU, halfV float64) Hitbox {
	du := u.Scale(halfU)
	dv := u.Perp().Scale(halfV)
	return QuadHitbox(
		center.Add(du),
		center.Add(dv),
		center.Sub(du),
		center.Sub(dv),
	)
}

// axes returns the outward edge normals of the quad, one per edge.
// The normals are not normalized; SAT projection overlap is invariant
// under axis scaling.
func (h Hitbox) axes() [4]Vec2 {
	var out [4]Vec2
	for i := 0; i < 4; i++ {
		edge := h.Verts[(i+1)%4].Sub(h.Verts[i])
		out[i] = edge.Perp()
	}
	return out
}
