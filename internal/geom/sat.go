package geom

// Overlaps reports whether two hitboxes physically overlap, using the
// Separating Axis Theorem for the polygon cases. Touching boundaries
// count as overlap.
func Overlaps(a, b Hitbox) bool {
	switch {
	case a.IsCircle && b.IsCircle:
		return circleCircle(a, b)
	case a.IsCircle:
		return circleQuad(a, b)
	case b.IsCircle:
		return circleQuad(b, a)
	default:
		return quadQuad(a, b)
	}
}

func circleCircle(a, b Hitbox) bool {
	rr := a.Radius + b.Radius
	return b.Center.Sub(a.Center).LenSq() <= rr*rr
}

// quadQuad tests two convex quads against the edge normals of both.
// Absence of any separating axis among the 8 candidates means collision.
func quadQuad(a, b Hitbox) bool {
	for _, axis := range a.axes() {
		if !projectionsOverlap(axis, a, b) {
			return false
		}
	}
	for _, axis := range b.axes() {
		if !projectionsOverlap(axis, a, b) {
			return false
		}
	}
	return true
}

// circleQuad tests a circle against a convex quad. The quad's edge normals
// alone are insufficient when the circle sits near a corner, so the axis
// from the circle center to the nearest vertex is tested as well.
func circleQuad(c, q Hitbox) bool {
	for _, axis := range q.axes() {
		if !projectionsOverlap(axis, c, q) {
			return false
		}
	}
	nearest := q.Verts[0]
	best := nearest.Sub(c.Center).LenSq()
	for _, v := range q.Verts[1:] {
		if d := v.Sub(c.Center).LenSq(); d < best {
			best = d
			nearest = v
		}
	}
	axis := nearest.Sub(c.Center)
	if axis.LenSq() < 1e-18 {
		// Circle center coincides with a vertex.
		return true
	}
	return projectionsOverlap(axis, c, q)
}

// projectionsOverlap projects both hitboxes onto axis and reports whether
// the 1D intervals intersect.
func projectionsOverlap(axis Vec2, a, b Hitbox) bool {
	aMin, aMax := project(axis, a)
	bMin, bMax := project(axis, b)
	return aMin <= bMax && bMin <= aMax
}

// project returns the interval covered by the hitbox along axis.
// A circle projects to [center.axis - R*|axis|, center.axis + R*|axis|].
func project(axis Vec2, h Hitbox) (min, max float64) {
	if h.IsCircle {
		c := h.Center.Dot(axis)
		r := h.Radius * axis.Len()
		return c - r, c + r
	}
	min = h.Verts[0].Dot(axis)
	max = min
	for _, v := range h.Verts[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
