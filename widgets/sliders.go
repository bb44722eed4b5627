package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wave-playground/synth"
	"wave-playground/theme"
)

// Slider row layout: "▶ Wave 12 ━━━━━┼━━●── +0.42"
const (
	cursorCols = 2
	labelCols  = 8 // "Wave 12 "
	valueCols  = 6 // " +0.42"

	// BarCols is the width of the bar part of a slider row
	BarCols = 21

	barStart = cursorCols + labelCols

	// SliderCols is the full width of a slider row
	SliderCols = barStart + BarCols + valueCols

	// headerRows sit above the first slider row
	headerRows = 1
)

// Sliders renders one row per harmonic and maps mouse positions back to
// harmonic targets.
type Sliders struct {
	Theme  *theme.Theme
	Cursor int // keyboard cursor row, -1 hides it
}

// NewSliders creates a slider panel with the cursor on the first row
func NewSliders(th *theme.Theme) *Sliders {
	return &Sliders{Theme: th}
}

// View renders the header plus a row for every partial. highlight marks
// the partial currently shown in the single view.
func (s *Sliders) View(partials []synth.Partial, highlight int) string {
	title := lipgloss.NewStyle().Foreground(s.Theme.Dim()).Render("Harmonics")
	rows := []string{title}
	for _, p := range partials {
		rows = append(rows, s.row(p, p.Index == highlight))
	}
	return strings.Join(rows, "\n")
}

func (s *Sliders) row(p synth.Partial, highlight bool) string {
	sym := s.Theme.Symbols
	var out strings.Builder

	cursor := sym.NoCursor
	if p.Index == s.Cursor {
		cursor = sym.Cursor
	}
	out.WriteString(lipgloss.NewStyle().Foreground(s.Theme.Accent()).Render(string(cursor)))
	out.WriteByte(' ')

	labelStyle := lipgloss.NewStyle().Foreground(s.Theme.Dim())
	if highlight {
		labelStyle = lipgloss.NewStyle().Foreground(s.Theme.Accent()).Bold(true)
	}
	out.WriteString(labelStyle.Render(fmt.Sprintf("Wave %-3d", p.Index+1)))

	out.WriteString(s.bar(p))

	valueStyle := lipgloss.NewStyle().Foreground(theme.Lip(s.Theme.SliderColor(p.Target)))
	out.WriteString(valueStyle.Render(fmt.Sprintf(" %+.2f", p.Target)))
	return out.String()
}

// bar fills from zero to the displayed amplitude and puts the thumb on
// the target.
func (s *Sliders) bar(p synth.Partial) string {
	sym := s.Theme.Symbols
	center := BarCols / 2
	fillTo := ValueToCol(p.Amplitude)
	thumb := ValueToCol(p.Target)

	fill := lipgloss.NewStyle().Foreground(theme.Lip(s.Theme.SliderColor(p.Amplitude)))
	empty := lipgloss.NewStyle().Foreground(s.Theme.Dim())
	knob := lipgloss.NewStyle().Foreground(theme.Lip(s.Theme.SliderColor(p.Target)))

	lo, hi := min(center, fillTo), max(center, fillTo)
	var out strings.Builder
	for c := 0; c < BarCols; c++ {
		switch {
		case c == thumb:
			out.WriteString(knob.Render(string(sym.Thumb)))
		case c == center:
			out.WriteString(empty.Render(string(sym.BarCenter)))
		case c >= lo && c <= hi:
			out.WriteString(fill.Render(string(sym.BarFill)))
		default:
			out.WriteString(empty.Render(string(sym.BarEmpty)))
		}
	}
	return out.String()
}

// ValueToCol maps an amplitude in [-1,1] to a bar column
func ValueToCol(v float64) int {
	v = synth.Clamp(v)
	return int(math.Round((v + 1) / 2 * float64(BarCols-1)))
}

// ColToValue maps a bar column back to an amplitude, rounded to 0.01
func ColToValue(col int) float64 {
	col = max(0, min(BarCols-1, col))
	v := float64(col)/float64(BarCols-1)*2 - 1
	return math.Round(v*100) / 100
}

// Hit describes what a mouse position inside the panel points at
type Hit struct {
	Index int     // harmonic row
	OnBar bool    // x is over the bar
	Value float64 // target for that x, valid when OnBar
}

// HitTest maps panel-relative cell coordinates to a harmonic row
func (s *Sliders) HitTest(x, y, n int) (Hit, bool) {
	idx := y - headerRows
	if idx < 0 || idx >= n || x < 0 || x >= SliderCols {
		return Hit{}, false
	}
	h := Hit{Index: idx}
	if x >= barStart && x < barStart+BarCols {
		h.OnBar = true
		h.Value = ColToValue(x - barStart)
	}
	return h, true
}

// ValueAt maps a panel x position onto the bar, clamping positions past
// either end. It is used while dragging, when the pointer may leave the row.
func (s *Sliders) ValueAt(x int) float64 {
	return ColToValue(x - barStart)
}

// Height returns the rows the panel needs for n harmonics
func Height(n int) int {
	return n + headerRows
}
