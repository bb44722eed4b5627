package tui

import (
	"wave-playground/synth"
	"wave-playground/theme"
)

// Snapshot runs the engine for ticks frames on a cols×rows sum scope and
// returns the last frame as text. No terminal program is started.
func Snapshot(engine *synth.Engine, th *theme.Theme, cols, rows, ticks int, lineWidth float64) string {
	sc := newScope(th, lineWidth)
	sc.resize(cols, 0, rows)
	engine.SetSink(sc)
	w, h := sc.sum.Size()
	engine.Resize(w, h, 1)

	for i := 0; i < ticks; i++ {
		engine.Tick()
	}
	return sc.sum.String()
}
