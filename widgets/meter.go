package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"wave-playground/theme"
)

var meterChars = []rune(" ▏▎▍▌▋▊▉█")

// PeakMeter shows the loudest sample of the summed wave. The needle
// follows the peak on a spring so it settles instead of jittering.
type PeakMeter struct {
	Theme  *theme.Theme
	Max    float64 // value shown as a full bar
	spring harmonica.Spring
	pos    float64
	vel    float64
	peak   float64
}

// NewPeakMeter creates a meter updated fps times per second
func NewPeakMeter(th *theme.Theme, fps int) *PeakMeter {
	return &PeakMeter{
		Theme:  th,
		Max:    2,
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 8.0, 0.9),
	}
}

// Update feeds the latest peak and moves the needle one frame
func (m *PeakMeter) Update(peak float64) {
	m.peak = peak
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, peak)
}

// Value returns the needle position
func (m *PeakMeter) Value() float64 {
	return m.pos
}

// View renders the meter in width cells
func (m *PeakMeter) View(width int) string {
	label := fmt.Sprintf("peak %4.2f ", m.peak)
	cells := width - len(label)
	if cells < 1 {
		return label
	}
	frac := math.Max(0, math.Min(1, m.pos/m.Max))
	eighths := int(math.Round(frac * float64(cells*8)))

	var bar strings.Builder
	for c := 0; c < cells; c++ {
		n := max(0, min(8, eighths-c*8))
		bar.WriteRune(meterChars[n])
	}

	color := m.Theme.Secondary()
	if m.peak > 1 {
		color = theme.Lip(m.Theme.SliderColor(-1))
	}
	return lipgloss.NewStyle().Foreground(m.Theme.Dim()).Render(label) +
		lipgloss.NewStyle().Foreground(color).Render(bar.String())
}
