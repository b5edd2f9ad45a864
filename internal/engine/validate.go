package engine

import (
	"fmt"
	"math"

	"github.com/bitcarousel/bitcarousel/internal/geom"
	"github.com/bitcarousel/bitcarousel/internal/model"
)

// Violation describes one broken layout invariant.
type Violation struct {
	Ring    int    `json:"ring"`
	ItemID  string `json:"item_id,omitempty"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Message
}

// gridSnapTolerance for checking that angles sit on division-grid slots, in
// degrees.
const gridSnapTolerance = 1e-6

// Validate enumerates every violated layout invariant: pairwise overlap on a
// ring, intrusion into the center exclusion zone, items off their ring's
// division grid or exceeding its slot count, items disagreeing with their
// ring's radius, and rings below their minimum feasible radius. An empty
// result means the design is fully consistent.
func (e *Engine) Validate(d model.Design) []Violation {
	var out []Violation

	exclusion := e.centerExclusionRadius(d)
	for _, it := range d.Items {
		if !d.HasRing(it.Ring) {
			out = append(out, Violation{Ring: it.Ring, ItemID: it.ID,
				Message: fmt.Sprintf("item %s references missing ring %d", it.ID, it.Ring)})
			continue
		}
		spec, ok := e.spec(it.ItemType)
		if !ok {
			out = append(out, Violation{Ring: it.Ring, ItemID: it.ID,
				Message: fmt.Sprintf("item %s has unknown type %q", it.ID, it.ItemType)})
			continue
		}
		if !clearsCenter(it.Radius, spec.RadialHalfSpan(), exclusion) {
			out = append(out, Violation{Ring: it.Ring, ItemID: it.ID,
				Message: fmt.Sprintf("item %s intrudes into the center exclusion zone", it.ID)})
		}
		r := d.Rings[it.Ring]
		if math.Abs(it.Radius-r.Radius) > 1e-9 {
			out = append(out, Violation{Ring: it.Ring, ItemID: it.ID,
				Message: fmt.Sprintf("item %s at radius %.3fmm disagrees with ring radius %.3fmm",
					it.ID, it.Radius, r.Radius)})
		}
		if r.Divisions > 0 {
			step := 360.0 / float64(r.Divisions)
			offset := math.Mod(model.NormalizeAngle(it.Angle), step)
			if offset > gridSnapTolerance && step-offset > gridSnapTolerance {
				out = append(out, Violation{Ring: it.Ring, ItemID: it.ID,
					Message: fmt.Sprintf("item %s angle %.4f is off the %d-division grid", it.ID, it.Angle, r.Divisions)})
			}
		}
	}

	for ring := range d.Rings {
		items := d.RingItems(ring)
		if n := d.Rings[ring].Divisions; n > 0 && len(items) > n {
			out = append(out, Violation{Ring: ring,
				Message: fmt.Sprintf("ring %d holds %d items but has only %d slots", ring, len(items), n)})
		}
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				a, aok := e.spec(items[i].ItemType)
				b, bok := e.spec(items[j].ItemType)
				if !aok || !bok {
					continue
				}
				ha := hitboxFor(a, items[i].Radius, items[i].Angle)
				hb := hitboxFor(b, items[j].Radius, items[j].Angle)
				if geom.Overlaps(ha, hb) {
					out = append(out, Violation{Ring: ring, ItemID: items[i].ID,
						Message: fmt.Sprintf("items %s and %s overlap on ring %d",
							items[i].ID, items[j].ID, ring)})
				}
			}
		}
		if min, err := e.MinFeasibleRadius(d, ring); err == nil && d.Rings[ring].Radius < min-1e-6 {
			out = append(out, Violation{Ring: ring,
				Message: fmt.Sprintf("ring %d radius %.3fmm is below the feasible minimum %.3fmm",
					ring, d.Rings[ring].Radius, min)})
		}
	}

	return out
}
