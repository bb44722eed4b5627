package tui

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"wave-playground/render"
	"wave-playground/synth"
	"wave-playground/theme"
)

// scope is the engine's frame sink: it owns the two canvases and draws
// each frame's buffers onto them.
type scope struct {
	renderer  *render.Renderer
	theme     *theme.Theme
	lineWidth float64

	single *render.Canvas
	sum    *render.Canvas
	last   synth.Frame
}

func newScope(th *theme.Theme, lineWidth float64) *scope {
	s := &scope{
		renderer:  render.NewRenderer(),
		theme:     th,
		lineWidth: lineWidth,
	}
	s.resize(0, 0, 0)
	return s
}

// resize replaces both canvases; they always share a width
func (s *scope) resize(cols, singleRows, sumRows int) {
	s.single = s.canvas(cols, singleRows)
	s.sum = s.canvas(cols, sumRows)
	s.last = synth.Frame{Selected: -1}
}

func (s *scope) canvas(cols, rows int) *render.Canvas {
	c := render.NewCanvas(cols, rows, 1)
	c.Grid = s.theme.Grid
	c.Background = s.theme.Background
	return c
}

func (s *scope) DrawFrame(f synth.Frame) {
	s.last = f
	if f.Single != nil {
		s.draw(s.single, f.Single, s.theme.Single)
	}
	s.draw(s.sum, f.Sum, s.theme.Sum)
}

func (s *scope) draw(c *render.Canvas, buf []float64, color colorful.Color) {
	_, h := c.Size()
	// margin stays about a tenth of the height, capped at the default
	s.renderer.Margin = math.Max(1, math.Min(render.DefaultMargin, math.Round(h/10)))
	s.renderer.Draw(c, buf, color, s.lineWidth)
}

// peak is the loudest sample of the last summed buffer
func (s *scope) peak() float64 {
	return synth.Peak(s.last.Sum)
}
