package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"wave-playground/synth"
	"wave-playground/theme"
)

func TestValueColRoundTrip(t *testing.T) {
	tests := []struct {
		v   float64
		col int
	}{
		{-1, 0},
		{0, BarCols / 2},
		{1, BarCols - 1},
		{5, BarCols - 1},
	}
	for _, tt := range tests {
		if got := ValueToCol(tt.v); got != tt.col {
			t.Errorf("ValueToCol(%v) = %d, want %d", tt.v, got, tt.col)
		}
	}
	if got := ColToValue(0); got != -1 {
		t.Errorf("ColToValue(0) = %v", got)
	}
	if got := ColToValue(BarCols / 2); got != 0 {
		t.Errorf("ColToValue(center) = %v", got)
	}
	if got := ColToValue(999); got != 1 {
		t.Errorf("ColToValue past end = %v", got)
	}
}

func TestHitTest(t *testing.T) {
	s := NewSliders(theme.Default())
	if _, ok := s.HitTest(3, 0, 12); ok {
		t.Error("header row hit")
	}
	if _, ok := s.HitTest(3, 13, 12); ok {
		t.Error("row past last harmonic hit")
	}
	h, ok := s.HitTest(1, 1, 12)
	if !ok || h.Index != 0 || h.OnBar {
		t.Errorf("label hit = %+v %v", h, ok)
	}
	h, ok = s.HitTest(barStart+BarCols-1, 12, 12)
	if !ok || h.Index != 11 || !h.OnBar || h.Value != 1 {
		t.Errorf("bar end hit = %+v %v", h, ok)
	}
}

func TestSlidersView(t *testing.T) {
	bank := synth.NewBank(4)
	_ = bank.SetTarget(2, -0.5)
	s := NewSliders(theme.Default())
	s.Cursor = 2
	out := s.View(bank.Partials(), 2)
	if h := lipgloss.Height(out); h != Height(4) {
		t.Errorf("height = %d, want %d", h, Height(4))
	}
	if w := lipgloss.Width(out); w != SliderCols {
		t.Errorf("width = %d, want %d", w, SliderCols)
	}
	if !strings.Contains(out, "-0.50") || !strings.Contains(out, "Wave 3") {
		t.Errorf("row missing:\n%s", out)
	}
}

func TestPeakMeterSettles(t *testing.T) {
	m := NewPeakMeter(theme.Default(), 30)
	for i := 0; i < 300; i++ {
		m.Update(1.2)
	}
	if v := m.Value(); v < 1.15 || v > 1.25 {
		t.Errorf("needle = %v, want ~1.2", v)
	}
	if w := lipgloss.Width(m.View(30)); w != 30 {
		t.Errorf("meter width = %d", w)
	}
}
