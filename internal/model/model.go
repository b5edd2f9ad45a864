package model

import "math"

// ShapeKind identifies the cross-section geometry of an item's socket.
type ShapeKind string

const (
	ShapeCircle  ShapeKind = "circle"  // Round shank or tube, a circular socket
	ShapeRect    ShapeKind = "rect"    // Rectangular socket (wrench slots, flat tools)
	ShapeTube    ShapeKind = "tube"    // Rectangular socket for a sleeve lying tangentially
	ShapeDiamond ShapeKind = "diamond" // Rhombic socket (square files seated on edge)
)

func (k ShapeKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known shape kinds.
func (k ShapeKind) Valid() bool {
	switch k {
	case ShapeCircle, ShapeRect, ShapeTube, ShapeDiamond:
		return true
	}
	return false
}

// Clearance is the minimum physical gap maintained between any two sockets
// and between a socket and the center well, in mm. Half of it is added to
// each side of every hitbox.
const Clearance = 0.2

// DefaultMaxRadius is the default workspace cap for ring radii, in mm.
const DefaultMaxRadius = 150.0

// ItemSpec describes the socket geometry for one accessory type.
// Length is the tangential (along-ring) extent for rect/tube sockets and the
// diagonal span for diamond sockets; Diameter is the radial extent, or the
// literal diameter for circular sockets.
type ItemSpec struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Shape    ShapeKind `json:"shape"`
	Length   float64   `json:"length"`   // mm
	Diameter float64   `json:"diameter"` // mm
}

// RadialHalfSpan returns half the item's extent along the radial direction.
func (s ItemSpec) RadialHalfSpan() float64 {
	return s.Diameter / 2
}

// TangentialHalfSpan returns half the item's extent along the ring tangent.
func (s ItemSpec) TangentialHalfSpan() float64 {
	switch s.Shape {
	case ShapeRect, ShapeTube:
		return s.Length / 2
	default:
		return s.Diameter / 2
	}
}

// CircumRadius returns the radius of the item's circumscribing circle.
// This is the conservative bound used for the center exclusion zone and for
// the overall design diameter: the center item's orientation relative to
// each ring item is not separately modeled.
func (s ItemSpec) CircumRadius() float64 {
	switch s.Shape {
	case ShapeCircle:
		return s.Diameter / 2
	case ShapeDiamond:
		// The long diagonal equals Length.
		return s.Length / 2
	default:
		return math.Hypot(s.Length/2, s.Diameter/2)
	}
}

// PlacedItem is one socket committed to a ring position.
type PlacedItem struct {
	ID       string  `json:"id"`
	ItemType string  `json:"item_type"`
	Radius   float64 `json:"radius"` // mm from the common center
	Angle    float64 `json:"angle"`  // degrees in [0, 360)
	Ring     int     `json:"ring"`   // index into Design.Rings
}

// Ring is one concentric track of the stand.
type Ring struct {
	Radius    float64 `json:"radius"`    // mm
	Divisions int     `json:"divisions"` // 0 = continuous angular freedom
}

// SlotAngle returns the angle of grid slot i when divisions are active.
func (r Ring) SlotAngle(i int) float64 {
	if r.Divisions <= 0 {
		return 0
	}
	return NormalizeAngle(float64(i) * 360.0 / float64(r.Divisions))
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Design is the full stand layout: the ordered rings, every placed socket,
// and the optional center well. Engine operations treat it as an immutable
// snapshot and return fresh values.
type Design struct {
	Name      string       `json:"name"`
	MaxRadius float64      `json:"max_radius"` // workspace cap, mm
	Rings     []Ring       `json:"rings"`
	Items     []PlacedItem `json:"items"`
	Center    string       `json:"center,omitempty"` // item type key, "" = none
}

// NewDesign creates an empty design with the default workspace cap.
func NewDesign(name string) Design {
	return Design{
		Name:      name,
		MaxRadius: DefaultMaxRadius,
		Rings:     []Ring{},
		Items:     []PlacedItem{},
	}
}

// Clone returns a deep copy of the design.
func (d Design) Clone() Design {
	out := d
	out.Rings = make([]Ring, len(d.Rings))
	copy(out.Rings, d.Rings)
	out.Items = make([]PlacedItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}

// RingItems returns the items placed on the given ring, in stored order.
func (d Design) RingItems(ring int) []PlacedItem {
	var out []PlacedItem
	for _, it := range d.Items {
		if it.Ring == ring {
			out = append(out, it)
		}
	}
	return out
}

// FindItem returns the item with the given id and whether it exists.
func (d Design) FindItem(id string) (PlacedItem, bool) {
	for _, it := range d.Items {
		if it.ID == id {
			return it, true
		}
	}
	return PlacedItem{}, false
}

// HasRing reports whether ring is a valid ring index.
func (d Design) HasRing(ring int) bool {
	return ring >= 0 && ring < len(d.Rings)
}
