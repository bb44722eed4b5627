package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultMargin keeps a full-scale sample this many pixels off the edge
const DefaultMargin = 20

// gridDivisions is the number of vertical grid cells across the surface
const gridDivisions = 10

// Renderer draws a sample buffer as a scope trace over a dashed grid
type Renderer struct {
	Margin float64
}

// NewRenderer returns a renderer with the default margin
func NewRenderer() *Renderer {
	return &Renderer{Margin: DefaultMargin}
}

// Draw clears s and paints the grid and the trace of buf. Nothing is drawn
// on a surface without width.
func (r *Renderer) Draw(s Surface, buf []float64, c colorful.Color, lineWidth float64) {
	w, h := s.Size()
	if !(w > 0) {
		return
	}

	s.Clear()
	mid := h / 2

	s.DrawDashedLine(Point{0, mid}, Point{w, mid})
	step := w / gridDivisions
	for i := 0; i <= gridDivisions; i++ {
		x := float64(i) * step
		s.DrawDashedLine(Point{x, 0}, Point{x, h})
	}

	if len(buf) == 0 {
		return
	}
	s.DrawPolyline(r.Points(buf, h), c, lineWidth, false)
	s.DrawPolyline(r.Points(buf, h), c, lineWidth, true)
}

// Points maps samples to surface coordinates for a surface of height h
func (r *Renderer) Points(buf []float64, h float64) []Point {
	mid := h / 2
	span := mid - r.Margin
	pts := make([]Point, len(buf))
	for x, v := range buf {
		pts[x] = Point{X: float64(x), Y: mid - v*span}
	}
	return pts
}
