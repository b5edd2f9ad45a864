package engine

import "errors"

// Engine failure kinds. Every operation returns either a success value or an
// error wrapping one of these sentinels, distinguishable with errors.Is.
// A failed operation never modifies the caller's design.
var (
	// ErrInfeasible means no valid position or radius exists under the
	// current geometric constraints.
	ErrInfeasible = errors.New("geometrically infeasible")

	// ErrCapacity means a ring's division slots are all occupied.
	ErrCapacity = errors.New("ring capacity exceeded")

	// ErrInvalidParameter covers bad division counts, unknown ring indexes,
	// unknown item ids, and unknown item types.
	ErrInvalidParameter = errors.New("invalid parameter")
)
