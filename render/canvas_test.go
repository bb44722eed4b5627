package render

import (
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(40, 10, 1)
	if w, h := c.Size(); w != 80 || h != 40 {
		t.Errorf("Size = %v x %v, want 80 x 40", w, h)
	}
	c = NewCanvas(40, 10, 2)
	if w, h := c.Size(); w != 40 || h != 20 {
		t.Errorf("scaled Size = %v x %v, want 40 x 20", w, h)
	}
	c = NewCanvas(-3, 5, 0)
	if w, _ := c.Size(); w != 0 {
		t.Errorf("negative cols gave width %v", w)
	}
}

func TestCanvasClearRemovesEverything(t *testing.T) {
	c := NewCanvas(20, 5, 1)
	c.DrawPolyline([]Point{{0, 0}, {39, 19}}, colorful.Color{R: 1}, 2, false)
	c.DrawDashedLine(Point{0, 10}, Point{40, 10})
	if c.Lit() == 0 {
		t.Fatal("nothing drawn")
	}
	c.Clear()
	if n := c.Lit(); n != 0 {
		t.Errorf("%d dots left after Clear", n)
	}
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r >= 0x2801 && r <= 0x28ff }) {
		t.Error("braille glyphs in cleared output")
	}
}

func TestCanvasHorizontalStroke(t *testing.T) {
	c := NewCanvas(10, 2, 1)
	c.DrawPolyline([]Point{{0, 3}, {19, 3}}, colorful.Color{G: 1}, 1, false)
	for x := 0; x < 20; x++ {
		if !c.Dot(x, 3) {
			t.Errorf("dot (%d,3) not lit", x)
		}
		if c.Dot(x, 2) || c.Dot(x, 4) {
			t.Errorf("width 1 stroke spread at x=%d", x)
		}
	}
}

func TestCanvasDashes(t *testing.T) {
	c := NewCanvas(10, 1, 1)
	c.DrawDashedLine(Point{0, 0}, Point{19, 0})
	for x := 0; x < 20; x++ {
		want := (x/5)%2 == 0
		if c.Dot(x, 0) != want {
			t.Errorf("dash dot %d lit=%v want %v", x, c.Dot(x, 0), want)
		}
	}
}

func TestCanvasGlowKeepsStrokeColour(t *testing.T) {
	stroke := colorful.Color{R: 0.93, G: 0.28, B: 0.6}
	c := NewCanvas(4, 2, 1)
	pts := []Point{{0, 4}, {7, 4}}
	c.DrawPolyline(pts, stroke, 1, false)
	c.DrawPolyline(pts, stroke, 1, true)
	// glow widens the trace by a dot above and below
	if !c.Dot(3, 3) || !c.Dot(3, 5) {
		t.Error("glow did not widen the stroke")
	}
	cl := c.cells[1*c.cols+1]
	if cl.layer != layerStroke || cl.color != stroke {
		t.Errorf("stroke cell overwritten by glow: %+v", cl)
	}
}

func TestCanvasOutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(3, 1, 1)
	c.DrawPolyline([]Point{{-10, -10}, {100, 100}}, colorful.Color{B: 1}, 3, false)
	c.DrawDashedLine(Point{6, 0}, Point{6, 4})
	if c.Lit() == 0 {
		t.Error("visible part of the line was not drawn")
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(7, 3, 1)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("rows = %d", len(lines))
	}
	for _, l := range lines {
		if len(l) != 7 {
			t.Errorf("blank row %q has len %d", l, len(l))
		}
	}
}

func TestRoundBrush(t *testing.T) {
	if got := len(roundBrush(1)); got != 1 {
		t.Errorf("diameter 1: %d dots", got)
	}
	if got := len(roundBrush(3)); got != 9 {
		t.Errorf("diameter 3: %d dots", got)
	}
}
