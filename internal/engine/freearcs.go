package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// Arc is a free angular span on a ring, in degrees.
type Arc struct {
	Start float64 `json:"start"` // degrees
	Span  float64 `json:"span"`  // degrees
}

// MinUsableArc is the smallest free span worth reporting, in degrees.
// Narrower remnants cannot hold even the smallest catalog item.
const MinUsableArc = 5.0

// FreeArcs reports the remaining usable angular spans on a ring. On a
// continuous ring these are the gaps between items, shrunk by each
// neighbor's angular footprint. On a gridded ring each free slot is
// reported as one arc of the slot width. An empty ring yields the full
// circle.
func (e *Engine) FreeArcs(d model.Design, ring int) ([]Arc, error) {
	if !d.HasRing(ring) {
		return nil, fmt.Errorf("%w: no ring %d", ErrInvalidParameter, ring)
	}
	r := d.Rings[ring]
	items := d.RingItems(ring)
	if len(items) == 0 {
		return []Arc{{Start: 0, Span: 360}}, nil
	}

	if r.Divisions > 0 {
		step := 360.0 / float64(r.Divisions)
		occupied := make(map[int]bool, len(items))
		for _, it := range items {
			occupied[slotIndex(r, it.Angle)] = true
		}
		var out []Arc
		for slot := 0; slot < r.Divisions; slot++ {
			if !occupied[slot] && step >= MinUsableArc {
				out = append(out, Arc{Start: model.NormalizeAngle(r.SlotAngle(slot) - step/2), Span: step})
			}
		}
		return out, nil
	}

	type edge struct {
		angle float64
		half  float64 // angular half-footprint in degrees
	}
	edges := make([]edge, 0, len(items))
	for _, it := range items {
		spec, ok := e.spec(it.ItemType)
		if !ok {
			continue
		}
		edges = append(edges, edge{
			angle: model.NormalizeAngle(it.Angle),
			half:  angularHalfFootprint(spec.TangentialHalfSpan(), r.Radius),
		})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].angle < edges[j].angle })

	var out []Arc
	for i, cur := range edges {
		next := edges[(i+1)%len(edges)]
		gap := next.angle - cur.angle
		if i == len(edges)-1 {
			gap += 360
		}
		span := gap - cur.half - next.half
		if span >= MinUsableArc {
			out = append(out, Arc{
				Start: model.NormalizeAngle(cur.angle + cur.half),
				Span:  span,
			})
		}
	}
	return out, nil
}

// angularHalfFootprint converts a tangential half-span at a radius to the
// half-angle it subtends, in degrees. Items wider than the ring diameter
// block the full half-circle.
func angularHalfFootprint(halfSpan, radius float64) float64 {
	if radius <= 0 || halfSpan >= radius {
		return 180
	}
	return math.Asin(halfSpan/radius) * 180 / math.Pi
}
