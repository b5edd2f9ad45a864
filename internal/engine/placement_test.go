package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

func TestPlaceFillsGridSlotsInOrder(t *testing.T) {
	e := newTestEngine()
	d := designWithRing(8, 12)

	for i := 0; i < 12; i++ {
		var item model.PlacedItem
		var err error
		d, item, err = e.Place(d, 0, "c1")
		require.NoError(t, err, "placement %d", i+1)
		assert.InDelta(t, float64(i)*30, item.Angle, 1e-9)
		assert.InDelta(t, 8, item.Radius, 1e-9)
	}

	// Scenario: the 13th placement on a 12-division ring fails with a
	// capacity error, not a geometric one.
	_, _, err := e.Place(d, 0, "c1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.NotErrorIs(t, err, ErrInfeasible)
}

func TestPlaceSkipsOccupiedSlots(t *testing.T) {
	e := newTestEngine()
	d := designWithRing(8, 6)

	d, first, err := e.Place(d, 0, "c1")
	require.NoError(t, err)
	require.InDelta(t, 0, first.Angle, 1e-9)

	// Second item goes to slot 1 even though slot 0 could geometrically
	// hold more than one tiny item.
	_, second, err := e.Place(d, 0, "c1")
	require.NoError(t, err)
	assert.InDelta(t, 60, second.Angle, 1e-9)
}

func TestPlaceGridGeometricInfeasibility(t *testing.T) {
	e := newTestEngine()
	// 8 slots on a 1mm ring: even the opposite slot is only 2mm away,
	// too close for two 2mm circles plus clearance, but slots remain free.
	d := designWithRing(1, 8)

	d, _, err := e.Place(d, 0, "c2")
	require.NoError(t, err)

	_, _, err = e.Place(d, 0, "c2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInfeasible)
	assert.NotErrorIs(t, err, ErrCapacity)
}

func TestPlaceContinuousEmptyRingAtZero(t *testing.T) {
	e := newTestEngine()
	d := designWithRing(8, 0)

	_, item, err := e.Place(d, 0, "c1")
	require.NoError(t, err)
	assert.InDelta(t, 0, item.Angle, 1e-9)
}

func TestPlaceContinuousWidestGap(t *testing.T) {
	e := newTestEngine()
	d := designWithRing(8, 0)
	d.Items = []model.PlacedItem{
		{ID: "a", ItemType: "c1", Radius: 8, Angle: 0, Ring: 0},
		{ID: "b", ItemType: "c1", Radius: 8, Angle: 90, Ring: 0},
	}

	// Gaps are 0-90 and 90-360; the widest spans 270 degrees around 225.
	_, item, err := e.Place(d, 0, "c1")
	require.NoError(t, err)
	assert.InDelta(t, 225, item.Angle, 1e-9)
}

func TestPlaceContinuousTieBreaksFirstGap(t *testing.T) {
	e := newTestEngine()
	d := designWithRing(8, 0)
	for i, a := range []float64{0, 90, 180, 270} {
		d.Items = append(d.Items, model.PlacedItem{
			ID: string(rune('a' + i)), ItemType: "c1", Radius: 8, Angle: a, Ring: 0,
		})
	}

	// All four gaps span 90 degrees; the first in sorted order wins.
	_, item, err := e.Place(d, 0, "c1")
	require.NoError(t, err)
	assert.InDelta(t, 45, item.Angle, 1e-9)
}

func TestCanPlaceInsufficientArc(t *testing.T) {
	e := newTestEngine()
	// Scenario: ring radius 5mm, two 4mm-long sockets at 0 and 10 degrees.
	// A third 4mm socket at 5 degrees has nowhere near enough arc.
	d := designWithRing(5, 0)
	d.Items = []model.PlacedItem{
		{ID: "a", ItemType: "r4", Radius: 5, Angle: 0, Ring: 0},
		{ID: "b", ItemType: "r4", Radius: 5, Angle: 10, Ring: 0},
	}

	assert.False(t, e.CanPlace(d, 0, 5, 5, "r4", ""))
	// Opposite side of the ring is clear.
	assert.True(t, e.CanPlace(d, 0, 5, 180, "r4", ""))
}

func TestCanPlaceRejectsUnknowns(t *testing.T) {
	e := newTestEngine()
	d := designWithRing(8, 0)

	assert.False(t, e.CanPlace(d, 3, 8, 0, "c1", ""), "unknown ring")
	assert.False(t, e.CanPlace(d, 0, 8, 0, "nope", ""), "unknown item type")
}

func TestPlaceDoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	d := designWithRing(8, 0)

	out, _, err := e.Place(d, 0, "c1")
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Empty(t, d.Items, "input design must stay untouched")
}

func TestPlaceInvalidParameters(t *testing.T) {
	e := newTestEngine()
	d := designWithRing(8, 0)

	_, _, err := e.Place(d, 5, "c1")
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, _, err = e.Place(d, 0, "missing-type")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestWidestGapMidpointSingleItem(t *testing.T) {
	items := []model.PlacedItem{{Angle: 90}}
	// One item: the gap is the full circle starting and ending at 90.
	assert.InDelta(t, 270, widestGapMidpoint(items), 1e-9)
}

func TestSlotIndexRounding(t *testing.T) {
	r := model.Ring{Radius: 8, Divisions: 12}
	assert.Equal(t, 0, slotIndex(r, 0))
	assert.Equal(t, 1, slotIndex(r, 30))
	assert.Equal(t, 1, slotIndex(r, 44))
	assert.Equal(t, 2, slotIndex(r, 46))
	assert.Equal(t, 0, slotIndex(r, 359))
}
