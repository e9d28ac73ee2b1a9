// Package viewport mengatur transform pan/zoom di atas drawing surface
// floor plan. Viewport adalah value type: setiap operasi mengembalikan
// viewport baru, tidak ada shared state.
package viewport

const (
	MinScale  = 0.5
	MaxScale  = 2.0
	ZoomStep  = 0.15
	MinHeight = 400.0
	// Vertical space taken by the dashboard chrome (header, toolbar,
	// stats strip) above and below the canvas.
	ChromeHeight = 220.0

	DefaultWidth  = 1200.0
	DefaultHeight = 800.0
)

// Viewport is the pan/zoom state applied to the logical plane before
// drawing. Offset is the screen position of the logical origin; Scale is
// uniform. Width and Height describe the drawing surface in screen units.
type Viewport struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// New returns a viewport at scale 1.0 with the origin at the top-left of
// a default-sized surface.
func New() Viewport {
	return Viewport{
		Scale:  1.0,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// ZoomIn increases the scale by one step, keeping the logical point under
// the surface center fixed on screen. Silently clamps at MaxScale.
func (v Viewport) ZoomIn() Viewport {
	return v.zoomTo(v.Scale + ZoomStep)
}

// ZoomOut decreases the scale by one step, keeping the surface center
// fixed. Silently clamps at MinScale.
func (v Viewport) ZoomOut() Viewport {
	return v.zoomTo(v.Scale - ZoomStep)
}

func (v Viewport) zoomTo(scale float64) Viewport {
	if scale < MinScale {
		scale = MinScale
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	if scale == v.Scale {
		return v
	}

	cx := v.Width / 2
	cy := v.Height / 2

	// Logical point currently under the surface center.
	lx := (cx - v.OffsetX) / v.Scale
	ly := (cy - v.OffsetY) / v.Scale

	// Solve for the offset that keeps that point under the center at the
	// new scale.
	v.OffsetX = cx - lx*scale
	v.OffsetY = cy - ly*scale
	v.Scale = scale
	return v
}

// Pan translates the offset by a screen-space delta. Scale is untouched.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// Reset returns the viewport to scale 1.0 with the offset at the origin,
// keeping the current surface dimensions.
func (v Viewport) Reset() Viewport {
	v.Scale = 1.0
	v.OffsetX = 0
	v.OffsetY = 0
	return v
}

// Resize tracks the containing layout: width is taken as-is, height is the
// window height minus the dashboard chrome, floored at MinHeight.
func (v Viewport) Resize(width, windowHeight float64) Viewport {
	height := windowHeight - ChromeHeight
	if height < MinHeight {
		height = MinHeight
	}
	v.Width = width
	v.Height = height
	return v
}

// ToScreen maps a logical-plane coordinate to the drawing surface.
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	return x*v.Scale + v.OffsetX, y*v.Scale + v.OffsetY
}

// ToLogical maps a surface coordinate back to the logical plane.
func (v Viewport) ToLogical(x, y float64) (float64, float64) {
	return (x - v.OffsetX) / v.Scale, (y - v.OffsetY) / v.Scale
}
