package model

import "fmt"

// Catalog holds the item specs available for placement: the built-in
// accessory set plus any user-defined entries.
type Catalog struct {
	Items []ItemSpec `json:"items"`
}

// BuiltinCatalog returns the catalog of common rotary-tool accessories.
func BuiltinCatalog() Catalog {
	return Catalog{
		Items: []ItemSpec{
			{Key: "bit-2.35", Label: "Rotary bit, 2.35mm shank", Shape: ShapeCircle, Length: 2.35, Diameter: 2.35},
			{Key: "bit-3.2", Label: "Rotary bit, 3.2mm shank", Shape: ShapeCircle, Length: 3.2, Diameter: 3.2},
			{Key: "drill-1", Label: "Micro drill, 1mm shank", Shape: ShapeCircle, Length: 1.0, Diameter: 1.0},
			{Key: "collet-4.3", Label: "Collet, 4.3mm body", Shape: ShapeCircle, Length: 4.3, Diameter: 4.3},
			{Key: "mandrel-3.2", Label: "Screw mandrel, 3.2mm shank", Shape: ShapeCircle, Length: 3.2, Diameter: 3.2},
			{Key: "burr-tube", Label: "Burr storage tube, lying", Shape: ShapeTube, Length: 12.0, Diameter: 6.0},
			{Key: "wrench-tip", Label: "Collet wrench tip slot", Shape: ShapeRect, Length: 10.0, Diameter: 3.0},
			{Key: "file-square-3", Label: "Square needle file, 3mm", Shape: ShapeDiamond, Length: 4.25, Diameter: 3.0},
			{Key: "file-square-4", Label: "Square needle file, 4mm", Shape: ShapeDiamond, Length: 5.66, Diameter: 4.0},
			{Key: "handpiece-22", Label: "Handpiece well, 22mm", Shape: ShapeCircle, Length: 22.0, Diameter: 22.0},
			{Key: "sharpening-block", Label: "Sharpening block well", Shape: ShapeRect, Length: 25.0, Diameter: 16.0},
		},
	}
}

// Find returns the spec with the given key and whether it exists.
func (c Catalog) Find(key string) (ItemSpec, bool) {
	for _, s := range c.Items {
		if s.Key == key {
			return s, true
		}
	}
	return ItemSpec{}, false
}

// Keys returns all spec keys in catalog order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c.Items))
	for i, s := range c.Items {
		keys[i] = s.Key
	}
	return keys
}

// Add inserts a spec, rejecting duplicate or empty keys and invalid geometry.
func (c *Catalog) Add(spec ItemSpec) error {
	if spec.Key == "" {
		return fmt.Errorf("item spec key must not be empty")
	}
	if !spec.Shape.Valid() {
		return fmt.Errorf("unknown shape kind %q", spec.Shape)
	}
	if spec.Length <= 0 || spec.Diameter <= 0 {
		return fmt.Errorf("item spec %q: length and diameter must be positive", spec.Key)
	}
	if _, exists := c.Find(spec.Key); exists {
		return fmt.Errorf("item spec %q already exists", spec.Key)
	}
	c.Items = append(c.Items, spec)
	return nil
}

// Remove deletes the spec with the given key. Returns true if found.
func (c *Catalog) Remove(key string) bool {
	for i, s := range c.Items {
		if s.Key == key {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Merge appends entries from other whose keys are not already present.
func (c *Catalog) Merge(other Catalog) {
	for _, s := range other.Items {
		if _, exists := c.Find(s.Key); !exists {
			c.Items = append(c.Items, s)
		}
	}
}
