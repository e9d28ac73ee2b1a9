// Package geometry berisi pure functions untuk menghitung bentuk meja
// di floor plan: footprint, posisi kursi, dan ukuran label.
// Semua fungsi deterministik - seats yang sama selalu menghasilkan
// layout yang sama.
package geometry

import "math"

// Footprint constants. Tables with one or two seats render as a circle,
// anything bigger as a rounded rectangle whose width grows with seat count.
const (
	CircleDiameter   = 100.0
	RectHeight       = 110.0
	RectBaseWidth    = 60.0
	RectWidthPerSeat = 20.0
	RectMinWidth     = 120.0
	RectMaxWidth     = 280.0
	RectCornerRadius = 12.0
)

// Chair placement constants.
const (
	ChairSize  = 18.0 // square chair glyph, drawn centered on its point
	chairGap   = 14.0 // distance between footprint edge and chair center
	sideMargin = 16.0 // keeps chairs away from rectangle corners
)

// Label sizing constants.
const (
	LabelHeight   = 22.0
	labelPerChar  = 7.0
	labelPadding  = 6.0
	labelMinWidth = 40.0
)

type Shape string

const (
	ShapeCircle Shape = "circle"
	ShapeRect   Shape = "rect"
)

// Point is a coordinate relative to the node center, y pointing down.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Footprint is the bounding shape of a table node. For circles Width and
// Height both equal the diameter and CornerRadius is zero.
type Footprint struct {
	Shape        Shape   `json:"shape"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	CornerRadius float64 `json:"corner_radius,omitempty"`
}

// FootprintFor returns the footprint for a table with the given seat count.
// Callers guarantee seats >= 1.
func FootprintFor(seats int) Footprint {
	if seats <= 2 {
		return Footprint{
			Shape:  ShapeCircle,
			Width:  CircleDiameter,
			Height: CircleDiameter,
		}
	}

	width := RectBaseWidth + float64(seats)*RectWidthPerSeat
	if width < RectMinWidth {
		width = RectMinWidth
	}
	if width > RectMaxWidth {
		width = RectMaxWidth
	}

	return Footprint{
		Shape:        ShapeRect,
		Width:        width,
		Height:       RectHeight,
		CornerRadius: RectCornerRadius,
	}
}

// ChairLayout returns exactly `seats` chair centers around the footprint,
// relative to the node center. Circle tables place chairs at equal angles
// starting at the top (-90 derajat) and going clockwise; rectangle tables
// distribute chairs over the four sides.
func ChairLayout(seats int) []Point {
	if seats < 1 {
		return nil
	}

	fp := FootprintFor(seats)
	if fp.Shape == ShapeCircle {
		return circleChairs(seats, fp)
	}
	return rectChairs(seats, fp)
}

func circleChairs(seats int, fp Footprint) []Point {
	radius := fp.Width/2 + chairGap
	step := 360.0 / float64(seats)

	chairs := make([]Point, 0, seats)
	for i := 0; i < seats; i++ {
		// -90 degrees is straight up in screen coordinates (y down);
		// increasing the angle walks clockwise around the table.
		angle := (-90.0 + float64(i)*step) * math.Pi / 180.0
		chairs = append(chairs, Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		})
	}
	return chairs
}

// sideSplit distributes seats over top, bottom, left, right. Top is filled
// first so small counts end up facing each other across the long sides.
func sideSplit(seats int) (top, bottom, left, right int) {
	top = int(math.Ceil(float64(seats) / 4.0))
	bottom = int(math.Ceil(float64(seats-top) / 3.0))
	left = int(math.Ceil(float64(seats-top-bottom) / 2.0))
	right = seats - top - bottom - left
	return
}

func rectChairs(seats int, fp Footprint) []Point {
	top, bottom, left, right := sideSplit(seats)

	halfW := fp.Width / 2
	halfH := fp.Height / 2

	chairs := make([]Point, 0, seats)
	chairs = appendRow(chairs, top, fp.Width, func(offset float64) Point {
		return Point{X: offset, Y: -halfH - chairGap}
	})
	chairs = appendRow(chairs, bottom, fp.Width, func(offset float64) Point {
		return Point{X: offset, Y: halfH + chairGap}
	})
	chairs = appendRow(chairs, left, fp.Height, func(offset float64) Point {
		return Point{X: -halfW - chairGap, Y: offset}
	})
	chairs = appendRow(chairs, right, fp.Height, func(offset float64) Point {
		return Point{X: halfW + chairGap, Y: offset}
	})
	return chairs
}

// appendRow spaces `count` chairs evenly along a side of the given length,
// keeping sideMargin clear of each corner.
func appendRow(chairs []Point, count int, length float64, place func(offset float64) Point) []Point {
	if count < 1 {
		return chairs
	}
	usable := length - 2*sideMargin
	step := usable / float64(count)
	for i := 0; i < count; i++ {
		offset := -length/2 + sideMargin + step*(float64(i)+0.5)
		chairs = append(chairs, place(offset))
	}
	return chairs
}

// LabelWidth returns the width of the name-label box for the given text.
func LabelWidth(text string) float64 {
	width := float64(len([]rune(text)))*labelPerChar + 2*labelPadding
	if width < labelMinWidth {
		width = labelMinWidth
	}
	return width
}
