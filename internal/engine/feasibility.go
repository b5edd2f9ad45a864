package engine

import (
	"github.com/bitcarousel/bitcarousel/internal/geom"
	"github.com/bitcarousel/bitcarousel/internal/model"
)

// hitboxFor builds the collision primitive for an item at a polar position.
// The item's tangential axis is aligned with the ring's circumferential
// direction at that angle, and half the clearance is added on each side so
// two touching hitboxes correspond to the true minimum gap.
func hitboxFor(spec model.ItemSpec, radius, angleDeg float64) geom.Hitbox {
	center := geom.FromPolar(radius, angleDeg)
	tangent := geom.UnitAt(angleDeg + 90)
	halfTan := spec.TangentialHalfSpan() + model.Clearance/2
	halfRad := spec.RadialHalfSpan() + model.Clearance/2

	switch spec.Shape {
	case model.ShapeCircle:
		return geom.CircleHitbox(center, spec.Diameter/2+model.Clearance/2)
	case model.ShapeDiamond:
		// Rhombus vertices along the tangential and radial unit vectors.
		// tangent.Perp() points inward radially, which spans the same axis.
		return geom.RhombusHitbox(center, tangent, halfTan, halfRad)
	default:
		return geom.BoxHitbox(center, tangent, halfTan, halfRad)
	}
}

// centerExclusionRadius returns the radial keep-out distance imposed by the
// design's center item, or 0 when no center item is configured.
func (e *Engine) centerExclusionRadius(d model.Design) float64 {
	if d.Center == "" {
		return 0
	}
	spec, ok := e.spec(d.Center)
	if !ok {
		return 0
	}
	return spec.CircumRadius()
}

// clearsCenter reports whether an item with the given radial half-span at
// radius r stays outside the center exclusion zone.
func clearsCenter(r, radialHalfSpan, exclusion float64) bool {
	if exclusion == 0 {
		return true
	}
	return r-radialHalfSpan >= exclusion+model.Clearance
}

// fitsAt reports whether an item of the given spec fits at (radius, angle)
// on the ring: outside the center exclusion zone and not colliding with any
// other item on the same ring. ignoreID excludes one existing item from the
// pairwise checks, for relocation-of-self trials.
func (e *Engine) fitsAt(d model.Design, ring int, radius, angleDeg float64, spec model.ItemSpec, ignoreID string) bool {
	if !clearsCenter(radius, spec.RadialHalfSpan(), e.centerExclusionRadius(d)) {
		return false
	}
	candidate := hitboxFor(spec, radius, angleDeg)
	for _, other := range d.RingItems(ring) {
		if other.ID == ignoreID {
			continue
		}
		otherSpec, ok := e.spec(other.ItemType)
		if !ok {
			continue
		}
		if geom.Overlaps(candidate, hitboxFor(otherSpec, other.Radius, other.Angle)) {
			return false
		}
	}
	return true
}

// ringFeasibleAt reports whether the ring's current angular assignment is
// collision-free with every item moved to the given shared radius. This is
// the monotone predicate the radius solver bisects over: growing the radius
// only lengthens the arcs between fixed angles.
func (e *Engine) ringFeasibleAt(d model.Design, ring int, radius float64) bool {
	items := d.RingItems(ring)
	exclusion := e.centerExclusionRadius(d)

	// Items with an unknown type have no geometry to test; skip them as
	// fitsAt does (Validate reports the unknown type separately).
	boxes := make([]geom.Hitbox, 0, len(items))
	for _, it := range items {
		spec, ok := e.spec(it.ItemType)
		if !ok {
			continue
		}
		if !clearsCenter(radius, spec.RadialHalfSpan(), exclusion) {
			return false
		}
		boxes = append(boxes, hitboxFor(spec, radius, it.Angle))
	}
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if geom.Overlaps(boxes[i], boxes[j]) {
				return false
			}
		}
	}
	return true
}

// CanPlace reports whether an item of the given type fits at the candidate
// polar position on the ring. ignoreID may name an existing item to exclude
// from the collision checks, or be empty.
func (e *Engine) CanPlace(d model.Design, ring int, radius, angleDeg float64, itemType, ignoreID string) bool {
	if !d.HasRing(ring) {
		return false
	}
	spec, ok := e.spec(itemType)
	if !ok {
		return false
	}
	return e.fitsAt(d, ring, radius, model.NormalizeAngle(angleDeg), spec, ignoreID)
}
