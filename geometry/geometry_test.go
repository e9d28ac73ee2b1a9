package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFootprintShapeBoundary(t *testing.T) {
	assert.Equal(t, ShapeCircle, FootprintFor(1).Shape)
	assert.Equal(t, ShapeCircle, FootprintFor(2).Shape)
	assert.Equal(t, ShapeRect, FootprintFor(3).Shape)
	assert.Equal(t, ShapeRect, FootprintFor(12).Shape)
}

func TestFootprintCircleDimensions(t *testing.T) {
	fp := FootprintFor(2)
	assert.Equal(t, CircleDiameter, fp.Width)
	assert.Equal(t, CircleDiameter, fp.Height)
	assert.Zero(t, fp.CornerRadius)
}

func TestFootprintWidthMonotonic(t *testing.T) {
	prev := FootprintFor(3).Width
	for seats := 4; seats <= 50; seats++ {
		width := FootprintFor(seats).Width
		assert.GreaterOrEqual(t, width, prev, "width shrank at seats=%d", seats)
		assert.LessOrEqual(t, width, RectMaxWidth)
		prev = width
	}
	// Clamp must have engaged well before 50 seats.
	assert.Equal(t, RectMaxWidth, FootprintFor(50).Width)
}

func TestChairLayoutCount(t *testing.T) {
	for seats := 1; seats <= 50; seats++ {
		chairs := ChairLayout(seats)
		assert.Len(t, chairs, seats, "seats=%d", seats)
	}
}

func TestChairLayoutDeterministic(t *testing.T) {
	for seats := 1; seats <= 50; seats++ {
		first := ChairLayout(seats)
		second := ChairLayout(seats)
		require.Equal(t, first, second, "layout differs between calls for seats=%d", seats)
		require.Equal(t, FootprintFor(seats), FootprintFor(seats))
	}
}

func TestSingleSeatChairAtTop(t *testing.T) {
	chairs := ChairLayout(1)
	require.Len(t, chairs, 1)

	// Straight up from the center: x == 0, y negative.
	assert.InDelta(t, 0, chairs[0].X, 1e-9)
	assert.Less(t, chairs[0].Y, 0.0)
}

func TestTwoSeatsOpposite(t *testing.T) {
	chairs := ChairLayout(2)
	require.Len(t, chairs, 2)

	assert.InDelta(t, 0, chairs[0].X, 1e-9)
	assert.InDelta(t, 0, chairs[1].X, 1e-9)
	assert.InDelta(t, -chairs[0].Y, chairs[1].Y, 1e-9)
}

func TestCircleChairsOnRing(t *testing.T) {
	const seats = 2
	chairs := ChairLayout(seats)
	require.Len(t, chairs, seats)

	radius := CircleDiameter/2 + chairGap
	for i, ch := range chairs {
		dist := math.Hypot(ch.X, ch.Y)
		assert.InDelta(t, radius, dist, 1e-9, "chair %d off the ring", i)
	}
}

func TestSideSplitExhaustsSeats(t *testing.T) {
	for seats := 3; seats <= 50; seats++ {
		top, bottom, left, right := sideSplit(seats)
		assert.Equal(t, seats, top+bottom+left+right, "seats=%d", seats)
		assert.GreaterOrEqual(t, right, 0, "seats=%d", seats)
	}
}

func TestRectChairsStayOffCorners(t *testing.T) {
	const seats = 8
	fp := FootprintFor(seats)
	chairs := ChairLayout(seats)

	halfW := fp.Width / 2
	for _, ch := range chairs {
		// Chairs above or below the table must be inside the horizontal
		// margin band, never past the corners.
		if math.Abs(ch.Y) > fp.Height/2 {
			assert.Less(t, math.Abs(ch.X), halfW)
		}
	}
}

func TestLabelWidth(t *testing.T) {
	assert.Equal(t, 40.0, LabelWidth(""))
	assert.Equal(t, 40.0, LabelWidth("T1"))

	long := LabelWidth("Patio Corner 12")
	assert.Greater(t, long, LabelWidth("T1"))
	assert.Equal(t, 7.0*15+12, long)
}
