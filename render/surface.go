package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Point is a position in logical surface pixels, origin top-left
type Point struct {
	X, Y float64
}

// Surface is anything a scope can be drawn onto
type Surface interface {
	// Size returns the logical width and height
	Size() (w, h float64)
	Clear()
	DrawDashedLine(p1, p2 Point)
	// DrawPolyline strokes connected points. With glow set the surface
	// paints a softened halo instead of the crisp stroke.
	DrawPolyline(pts []Point, c colorful.Color, width float64, glow bool)
}
