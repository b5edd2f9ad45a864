// Package engine implements the geometric feasibility core of the stand
// designer: shape-aware hitboxes, SAT collision testing, angular placement
// search, minimum-radius solving, and division-grid reassignment.
//
// Every operation is a pure function over a design snapshot: it takes a
// model.Design by value and returns a new design or a typed failure. The
// input design is never modified, so a failed call leaves the caller's
// layout untouched. Mutating operations run in two sequential phases:
// apply and validate the requested delta, then normalize the affected
// ring radii.
package engine

import (
	"github.com/google/uuid"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// IDGenerator supplies unique opaque identifiers for new items. Injectable
// so tests can fix the sequence.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the default generator, producing 8-character uuid prefixes.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()[:8]
}

// Engine evaluates and mutates stand designs. It holds no layout state of
// its own; the host owns the canonical design value.
type Engine struct {
	Catalog model.Catalog
	IDs     IDGenerator
}

// New creates an engine over the given catalog with uuid-based ids.
func New(catalog model.Catalog) *Engine {
	return &Engine{Catalog: catalog, IDs: UUIDGenerator{}}
}

// spec resolves an item type key against the catalog.
func (e *Engine) spec(itemType string) (model.ItemSpec, bool) {
	return e.Catalog.Find(itemType)
}
