package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Braille cells are 2 dots wide and 4 dots tall
const (
	dotsX = 2
	dotsY = 4
)

// brailleBits[x][y] is the bit for the dot at column x, row y of a cell
var brailleBits = [dotsX][dotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// dashLen is the on/off run of a dashed line in logical pixels
const dashLen = 5

// glowMix is how far the glow colour is pulled toward the background
const glowMix = 0.55

type layer uint8

const (
	layerEmpty layer = iota
	layerGrid
	layerGlow
	layerStroke
)

type cell struct {
	mask  uint8
	layer layer
	color colorful.Color
}

// Canvas is a terminal Surface made of braille cells. Every dot is one
// physical pixel; logical pixels are physical pixels divided by Scale.
type Canvas struct {
	cols, rows int
	scale      float64
	cells      []cell

	Grid       colorful.Color
	Background colorful.Color
}

// NewCanvas allocates a cols×rows character canvas
func NewCanvas(cols, rows int, scale float64) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if !(scale > 0) {
		scale = 1
	}
	return &Canvas{
		cols:       cols,
		rows:       rows,
		scale:      scale,
		cells:      make([]cell, cols*rows),
		Grid:       colorful.Color{R: 0.9, G: 0.91, B: 0.92},
		Background: colorful.Color{},
	}
}

// Cells returns the canvas size in characters
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Size returns the logical width and height
func (c *Canvas) Size() (w, h float64) {
	return float64(c.cols*dotsX) / c.scale, float64(c.rows*dotsY) / c.scale
}

// Clear removes every dot
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// DrawDashedLine draws a grid line, 5 pixels on and 5 off
func (c *Canvas) DrawDashedLine(p1, p2 Point) {
	dash := int(math.Max(1, math.Round(dashLen*c.scale)))
	c.raster(p1, p2, func(i, x, y int) {
		if (i/dash)%2 == 0 {
			c.set(x, y, layerGrid, c.Grid)
		}
	})
}

// DrawPolyline strokes pts with a round brush. The glow pass uses a wider
// brush and a colour faded toward the background, and never paints over
// the crisp stroke.
func (c *Canvas) DrawPolyline(pts []Point, col colorful.Color, width float64, glow bool) {
	if len(pts) == 0 {
		return
	}
	brush := roundBrush(width * c.scale)
	lay := layerStroke
	if glow {
		brush = roundBrush(width*c.scale + 2)
		col = col.BlendLab(c.Background, glowMix).Clamped()
		lay = layerGlow
	}
	stamp := func(_, x, y int) {
		for _, o := range brush {
			c.set(x+o[0], y+o[1], lay, col)
		}
	}
	if len(pts) == 1 {
		c.raster(pts[0], pts[0], stamp)
		return
	}
	for i := 1; i < len(pts); i++ {
		c.raster(pts[i-1], pts[i], stamp)
	}
}

// Dot reports whether the physical dot at (x, y) is lit
func (c *Canvas) Dot(x, y int) bool {
	cx, cy := x/dotsX, y/dotsY
	if x < 0 || y < 0 || cx >= c.cols || cy >= c.rows {
		return false
	}
	return c.cells[cy*c.cols+cx].mask&brailleBits[x%dotsX][y%dotsY] != 0
}

// Lit counts lit dots on the whole canvas
func (c *Canvas) Lit() int {
	n := 0
	for _, cl := range c.cells {
		for m := cl.mask; m != 0; m &= m - 1 {
			n++
		}
	}
	return n
}

// String renders the canvas as coloured braille rows
func (c *Canvas) String() string {
	var out strings.Builder
	var run strings.Builder
	for r := 0; r < c.rows; r++ {
		if r > 0 {
			out.WriteByte('\n')
		}
		var runColor colorful.Color
		runLit := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runLit {
				out.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor.Hex())).Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			cl := c.cells[r*c.cols+col]
			lit := cl.mask != 0
			if lit != runLit || (lit && cl.color != runColor) {
				flush()
				runLit, runColor = lit, cl.color
			}
			if lit {
				run.WriteRune(rune(0x2800 + int(cl.mask)))
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
	}
	return out.String()
}

func (c *Canvas) set(x, y int, l layer, col colorful.Color) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/dotsX, y/dotsY
	if cx >= c.cols || cy >= c.rows {
		return
	}
	cl := &c.cells[cy*c.cols+cx]
	cl.mask |= brailleBits[x%dotsX][y%dotsY]
	if l >= cl.layer {
		cl.layer = l
		cl.color = col
	}
}

// raster walks the physical dots from p1 to p2, calling plot with the step
// number and dot position.
func (c *Canvas) raster(p1, p2 Point, plot func(i, x, y int)) {
	x1, y1 := p1.X*c.scale, p1.Y*c.scale
	x2, y2 := p2.X*c.scale, p2.Y*c.scale
	if math.IsNaN(x1+y1+x2+y2) || math.IsInf(x1+y1+x2+y2, 0) {
		return
	}
	dx, dy := x2-x1, y2-y1
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		plot(0, int(math.Floor(x1)), int(math.Floor(y1)))
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		plot(i, int(math.Floor(x1+dx*t)), int(math.Floor(y1+dy*t)))
	}
}

// roundBrush returns dot offsets covering a disc of the given diameter
func roundBrush(diameter float64) [][2]int {
	n := int(math.Round(diameter))
	if n <= 1 {
		return [][2]int{{0, 0}}
	}
	r := float64(n) / 2
	lo, hi := -(n-1)/2, n/2
	var out [][2]int
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				out = append(out, [2]int{dx, dy})
			}
		}
	}
	return out
}
