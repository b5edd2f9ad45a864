package engine

import (
	"fmt"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// Relocate moves an existing item to a requested polar position, optionally
// onto a different ring (pass ring < 0 to stay). The final position always
// uses the destination ring's canonical radius, with the angle snapped to
// the ring's grid when divisions are active; the requested values are a hint.
func (e *Engine) Relocate(d model.Design, id string, radius, angleDeg float64, ring int) (model.Design, model.PlacedItem, error) {
	item, ok := d.FindItem(id)
	if !ok {
		return d, model.PlacedItem{}, fmt.Errorf("%w: unknown item id %q", ErrInvalidParameter, id)
	}
	if ring < 0 {
		ring = item.Ring
	}
	if !d.HasRing(ring) {
		return d, model.PlacedItem{}, fmt.Errorf("%w: no ring %d", ErrInvalidParameter, ring)
	}
	spec, ok := e.spec(item.ItemType)
	if !ok {
		return d, model.PlacedItem{}, fmt.Errorf("%w: unknown item type %q", ErrInvalidParameter, item.ItemType)
	}

	r := d.Rings[ring]
	angle := model.NormalizeAngle(angleDeg)
	if r.Divisions > 0 {
		slot := slotIndex(r, angle)
		angle = r.SlotAngle(slot)
		for _, other := range d.RingItems(ring) {
			if other.ID != id && slotIndex(r, other.Angle) == slot {
				return d, model.PlacedItem{}, fmt.Errorf("%w: slot %d on ring %d is occupied",
					ErrCapacity, slot, ring)
			}
		}
		if ring != item.Ring && len(d.RingItems(ring)) >= r.Divisions {
			return d, model.PlacedItem{}, fmt.Errorf("%w: ring %d is full", ErrCapacity, ring)
		}
	}

	if !e.fitsAt(d, ring, r.Radius, angle, spec, id) {
		return d, model.PlacedItem{}, fmt.Errorf("%w: item %q does not fit at %.1f deg on ring %d",
			ErrInfeasible, id, angle, ring)
	}

	out := d.Clone()
	for i := range out.Items {
		if out.Items[i].ID == id {
			out.Items[i].Ring = ring
			out.Items[i].Radius = r.Radius
			out.Items[i].Angle = angle
		}
	}
	out = e.normalizeRing(out, ring)
	moved, _ := out.FindItem(id)
	return out, moved, nil
}

// Remove deletes an item from the design.
func (e *Engine) Remove(d model.Design, id string) (model.Design, error) {
	if _, ok := d.FindItem(id); !ok {
		return d, fmt.Errorf("%w: unknown item id %q", ErrInvalidParameter, id)
	}
	out := d.Clone()
	for i := range out.Items {
		if out.Items[i].ID == id {
			out.Items = append(out.Items[:i], out.Items[i+1:]...)
			break
		}
	}
	return out, nil
}

// SetRingRadius sets a ring's radius to max(requested, minimum feasible),
// clamped to the workspace cap, and returns the final radius applied.
func (e *Engine) SetRingRadius(d model.Design, ring int, requested float64) (model.Design, float64, error) {
	if !d.HasRing(ring) {
		return d, 0, fmt.Errorf("%w: no ring %d", ErrInvalidParameter, ring)
	}
	if requested < 0 {
		return d, 0, fmt.Errorf("%w: radius must not be negative", ErrInvalidParameter)
	}
	min, err := e.MinFeasibleRadius(d, ring)
	if err != nil {
		return d, 0, err
	}
	radius := requested
	if radius < min {
		radius = min
	}
	if radius > d.MaxRadius {
		radius = d.MaxRadius
	}
	out := setRingRadiusValue(d.Clone(), ring, radius)
	return out, radius, nil
}

// SetCenterItem sets or clears (itemType == "") the center item, then
// normalizes every ring against the new exclusion zone.
func (e *Engine) SetCenterItem(d model.Design, itemType string) (model.Design, error) {
	if itemType != "" {
		if _, ok := e.spec(itemType); !ok {
			return d, fmt.Errorf("%w: unknown item type %q", ErrInvalidParameter, itemType)
		}
	}
	out := d.Clone()
	out.Center = itemType
	out = e.normalizeAllRings(out)
	return out, nil
}

// AddRing appends a ring and returns its index. The radius is clamped to the
// workspace cap; divisions may be 0 for continuous angular freedom.
func (e *Engine) AddRing(d model.Design, radius float64, divisions int) (model.Design, int, error) {
	if radius < 0 {
		return d, 0, fmt.Errorf("%w: radius must not be negative", ErrInvalidParameter)
	}
	if divisions < 0 {
		return d, 0, fmt.Errorf("%w: divisions must not be negative", ErrInvalidParameter)
	}
	if radius > d.MaxRadius {
		radius = d.MaxRadius
	}
	out := d.Clone()
	out.Rings = append(out.Rings, model.Ring{Radius: radius, Divisions: divisions})
	return out, len(out.Rings) - 1, nil
}

// RemoveRing destroys a ring and every item on it. Rings after it shift
// down one index, and their items' ring indices follow.
func (e *Engine) RemoveRing(d model.Design, ring int) (model.Design, error) {
	if !d.HasRing(ring) {
		return d, fmt.Errorf("%w: no ring %d", ErrInvalidParameter, ring)
	}
	out := d.Clone()
	out.Rings = append(out.Rings[:ring], out.Rings[ring+1:]...)
	kept := out.Items[:0]
	for _, it := range out.Items {
		if it.Ring == ring {
			continue
		}
		if it.Ring > ring {
			it.Ring--
		}
		kept = append(kept, it)
	}
	out.Items = kept
	return out, nil
}

// DesignDiameter returns the overall bounding diameter of the design in mm:
// twice the largest of every item's outer reach and the center item's
// circumscribing radius. Reporting only; it does not feed back into placement.
func (e *Engine) DesignDiameter(d model.Design) float64 {
	var reach float64
	for _, it := range d.Items {
		spec, ok := e.spec(it.ItemType)
		if !ok {
			continue
		}
		if r := it.Radius + spec.CircumRadius(); r > reach {
			reach = r
		}
	}
	if d.Center != "" {
		if spec, ok := e.spec(d.Center); ok && spec.CircumRadius() > reach {
			reach = spec.CircumRadius()
		}
	}
	return 2 * reach
}
