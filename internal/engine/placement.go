package engine

import (
	"fmt"
	"sort"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// Place finds a feasible angular position for a new item on the ring and
// returns the updated design together with the created item. The trial
// always uses the ring's current radius; the follow-up normalization phase
// re-solves the radius after the item is committed.
//
// Gridded rings are searched slot by slot in index order; a slot already
// holding an item is skipped even when a second item would fit there.
// Continuous rings get the midpoint of the widest free angular gap.
func (e *Engine) Place(d model.Design, ring int, itemType string) (model.Design, model.PlacedItem, error) {
	if !d.HasRing(ring) {
		return d, model.PlacedItem{}, fmt.Errorf("%w: no ring %d", ErrInvalidParameter, ring)
	}
	spec, ok := e.spec(itemType)
	if !ok {
		return d, model.PlacedItem{}, fmt.Errorf("%w: unknown item type %q", ErrInvalidParameter, itemType)
	}

	r := d.Rings[ring]
	items := d.RingItems(ring)

	var angle float64
	if r.Divisions > 0 {
		if len(items) >= r.Divisions {
			return d, model.PlacedItem{}, fmt.Errorf("%w: ring %d holds %d of %d slots",
				ErrCapacity, ring, len(items), r.Divisions)
		}
		slot, ok := e.firstFreeSlot(d, ring, r, spec, items)
		if !ok {
			return d, model.PlacedItem{}, fmt.Errorf("%w: no free slot on ring %d admits a %q",
				ErrInfeasible, ring, itemType)
		}
		angle = r.SlotAngle(slot)
	} else {
		angle = widestGapMidpoint(items)
		if !e.fitsAt(d, ring, r.Radius, angle, spec, "") {
			return d, model.PlacedItem{}, fmt.Errorf("%w: widest gap on ring %d does not admit a %q",
				ErrInfeasible, ring, itemType)
		}
	}

	item := model.PlacedItem{
		ID:       e.IDs.NewID(),
		ItemType: itemType,
		Radius:   r.Radius,
		Angle:    angle,
		Ring:     ring,
	}

	out := d.Clone()
	out.Items = append(out.Items, item)
	out = e.normalizeRing(out, ring)
	placed, _ := out.FindItem(item.ID)
	return out, placed, nil
}

// firstFreeSlot returns the lowest-index unoccupied grid slot where the spec
// fits, and whether one exists.
func (e *Engine) firstFreeSlot(d model.Design, ring int, r model.Ring, spec model.ItemSpec, items []model.PlacedItem) (int, bool) {
	occupied := make(map[int]bool, len(items))
	for _, it := range items {
		occupied[slotIndex(r, it.Angle)] = true
	}
	for slot := 0; slot < r.Divisions; slot++ {
		if occupied[slot] {
			continue
		}
		if e.fitsAt(d, ring, r.Radius, r.SlotAngle(slot), spec, "") {
			return slot, true
		}
	}
	return 0, false
}

// slotIndex returns the nearest grid slot index for an angle on a gridded ring.
func slotIndex(r model.Ring, angleDeg float64) int {
	if r.Divisions <= 0 {
		return 0
	}
	step := 360.0 / float64(r.Divisions)
	idx := int(model.NormalizeAngle(angleDeg)/step + 0.5)
	return idx % r.Divisions
}

// widestGapMidpoint returns the midpoint of the widest angular gap between
// the existing items, wrapping around 360 degrees. Ties go to the first gap
// in sorted-angle order. An empty ring yields angle 0.
func widestGapMidpoint(items []model.PlacedItem) float64 {
	if len(items) == 0 {
		return 0
	}

	angles := make([]float64, len(items))
	for i, it := range items {
		angles[i] = model.NormalizeAngle(it.Angle)
	}
	sort.Float64s(angles)

	bestStart, bestSpan := angles[0], -1.0
	for i, start := range angles {
		var span float64
		if i == len(angles)-1 {
			span = angles[0] + 360 - start
		} else {
			span = angles[i+1] - start
		}
		if span > bestSpan {
			bestSpan = span
			bestStart = start
		}
	}
	return model.NormalizeAngle(bestStart + bestSpan/2)
}
