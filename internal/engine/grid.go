package engine

import (
	"fmt"
	"sort"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// SetRingDivisions changes a ring's division count, reassigning its items to
// the new grid. Items are sorted by angle and mapped, in that relative
// order, onto slots 0..n-1; absolute angular positions are not preserved.
// Every reassigned position is validated at the ring's current radius and
// the whole change is rejected if any fails. On success the radius is
// re-normalized, since a denser grid may need a larger ring.
func (e *Engine) SetRingDivisions(d model.Design, ring, divisions int) (model.Design, error) {
	if !d.HasRing(ring) {
		return d, fmt.Errorf("%w: no ring %d", ErrInvalidParameter, ring)
	}
	if divisions < 1 {
		return d, fmt.Errorf("%w: division count must be at least 1, got %d", ErrInvalidParameter, divisions)
	}

	items := d.RingItems(ring)
	current := d.Rings[ring].Divisions
	if len(items) > divisions {
		return d, fmt.Errorf("%w: ring %d holds %d items, cannot divide into %d slots",
			ErrCapacity, ring, len(items), divisions)
	}
	// Shrinking a full grid leaves no slack to renegotiate positions; a
	// conservative guard rather than a geometric necessity.
	if current > 0 && divisions < current && len(items) == current {
		return d, fmt.Errorf("%w: ring %d is at full occupancy, cannot reduce divisions from %d to %d",
			ErrCapacity, ring, current, divisions)
	}

	out := d.Clone()
	out.Rings[ring].Divisions = divisions

	// Reassign in angular order onto slots starting from index 0.
	ids := make([]string, len(items))
	sorted := append([]model.PlacedItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return model.NormalizeAngle(sorted[i].Angle) < model.NormalizeAngle(sorted[j].Angle)
	})
	for i, it := range sorted {
		ids[i] = it.ID
	}
	newAngle := make(map[string]float64, len(ids))
	for i, id := range ids {
		newAngle[id] = out.Rings[ring].SlotAngle(i)
	}
	for i := range out.Items {
		if a, ok := newAngle[out.Items[i].ID]; ok {
			out.Items[i].Angle = a
		}
	}

	// All-or-nothing validation of the new assignment at the current radius.
	if !e.ringFeasibleAt(out, ring, out.Rings[ring].Radius) {
		return d, fmt.Errorf("%w: items on ring %d do not fit a %d-division grid at radius %.2fmm",
			ErrInfeasible, ring, divisions, d.Rings[ring].Radius)
	}

	out = e.normalizeRing(out, ring)
	return out, nil
}
