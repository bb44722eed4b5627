package tui

import (
	"strings"
	"testing"

	"wave-playground/synth"
	"wave-playground/theme"
)

func TestSnapshotShape(t *testing.T) {
	e := synth.NewEngine(12, nil)
	e.ApplyPreset(synth.PresetSquare)
	out := Snapshot(e, theme.Default(), 40, 10, 30, 1)

	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	if e.Frames() != 30 {
		t.Errorf("frames = %d", e.Frames())
	}
	if v := e.Viewport(); v.Width != 80 || v.Height != 40 {
		t.Errorf("viewport = %+v", v)
	}
}

func TestSnapshotZeroTicks(t *testing.T) {
	e := synth.NewEngine(4, nil)
	out := Snapshot(e, theme.Default(), 10, 3, 0, 1)
	if strings.TrimSpace(out) != "" {
		t.Errorf("expected a blank canvas, got %q", out)
	}
}
