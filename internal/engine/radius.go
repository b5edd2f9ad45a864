package engine

import (
	"fmt"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// bisectIterations is enough for sub-micrometer convergence at workshop
// scales (150mm / 2^40).
const bisectIterations = 40

// growthFactor for the doubling search that establishes a feasible upper bound.
const growthFactor = 1.5

// MinFeasibleRadius computes the smallest radius at which the ring's items,
// kept at their current angles, are collision-free and clear of the center
// exclusion zone. Angles are never altered by this routine.
//
// If even the workspace cap is infeasible, the cap is returned as a
// best-effort result rather than an error; Validate surfaces the remaining
// over-capacity condition for hosts that want stricter behavior.
func (e *Engine) MinFeasibleRadius(d model.Design, ring int) (float64, error) {
	if !d.HasRing(ring) {
		return 0, fmt.Errorf("%w: no ring %d", ErrInvalidParameter, ring)
	}
	items := d.RingItems(ring)
	if len(items) == 0 {
		return 0, nil
	}

	// Lower bound from the radial center-exclusion constraint alone.
	lower := 0.0
	exclusion := e.centerExclusionRadius(d)
	if exclusion > 0 {
		for _, it := range items {
			spec, ok := e.spec(it.ItemType)
			if !ok {
				continue
			}
			if min := exclusion + model.Clearance + spec.RadialHalfSpan(); min > lower {
				lower = min
			}
		}
	}

	maxR := d.MaxRadius
	if lower >= maxR {
		return maxR, nil
	}

	// Grow geometrically from the current radius until feasible or capped.
	upper := d.Rings[ring].Radius
	if upper < lower {
		upper = lower
	}
	for !e.ringFeasibleAt(d, ring, upper) {
		if upper >= maxR {
			return maxR, nil
		}
		upper *= growthFactor
		if upper > maxR || upper == 0 {
			upper = maxR
		}
	}

	// Feasibility is monotone non-decreasing in radius for fixed angles, so
	// bisection between the infeasible-or-minimal lower bound and the
	// feasible upper bound converges to the minimum.
	lo, hi := lower, upper
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		if e.ringFeasibleAt(d, ring, mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}

// normalizeRing is the explicit second phase run after every mutation that
// can change a ring's required minimum radius. It raises the ring radius to
// the feasible minimum when the current radius is below it, moving every
// item on the ring to the shared radius. It never shrinks a ring.
func (e *Engine) normalizeRing(d model.Design, ring int) model.Design {
	min, err := e.MinFeasibleRadius(d, ring)
	if err != nil {
		return d
	}
	radius := d.Rings[ring].Radius
	if min > radius {
		radius = min
	}
	return setRingRadiusValue(d, ring, radius)
}

// normalizeAllRings re-solves every ring, for mutations with global effect
// such as changing the center item.
func (e *Engine) normalizeAllRings(d model.Design) model.Design {
	for ring := range d.Rings {
		d = e.normalizeRing(d, ring)
	}
	return d
}

// setRingRadiusValue writes the shared radius onto the ring and all its items.
func setRingRadiusValue(d model.Design, ring int, radius float64) model.Design {
	d.Rings[ring].Radius = radius
	for i := range d.Items {
		if d.Items[i].Ring == ring {
			d.Items[i].Radius = radius
		}
	}
	return d
}
