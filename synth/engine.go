package synth

import (
	"math"

	"wave-playground/debug"
)

// TimeStep is how far the time cursor moves per tick
const TimeStep = 0.01

// Viewport is the logical size of the drawing surface plus the factor that
// maps logical pixels to physical ones.
type Viewport struct {
	Width  float64
	Height float64
	Scale  float64
}

// Pixels returns the number of samples a buffer needs for this viewport
func (v Viewport) Pixels() int {
	if !(v.Width >= 1) {
		return 0
	}
	return int(v.Width)
}

// Frame is what one tick hands to the sink
type Frame struct {
	Time     float64
	Viewport Viewport
	Selected int       // partial drawn in Single, -1 when none
	Active   bool      // Selected is highlighted rather than sticky
	Single   []float64 // nil when nothing has been selected yet
	Sum      []float64
}

// FrameSink receives the buffers computed by each tick
type FrameSink interface {
	DrawFrame(f Frame)
}

// Engine owns the harmonic state and advances it one frame per Tick. It
// never schedules itself; the host decides when to call Tick.
type Engine struct {
	bank     *Bank
	smoother Smoother
	sel      Selection
	time     float64
	view     Viewport
	sink     FrameSink
	frames   uint64
}

// NewEngine creates an engine with n partials. sink may be nil.
func NewEngine(n int, sink FrameSink) *Engine {
	return &Engine{
		bank:     NewBank(n),
		smoother: NewSmoother(),
		view:     Viewport{Scale: 1},
		sink:     sink,
	}
}

// SetSink replaces the frame consumer
func (e *Engine) SetSink(sink FrameSink) {
	e.sink = sink
}

// Bank exposes the harmonic state for reading
func (e *Engine) Bank() *Bank {
	return e.bank
}

// Time returns the current time cursor
func (e *Engine) Time() float64 {
	return e.time
}

// Selection returns a copy of the selection state
func (e *Engine) Selection() Selection {
	return e.sel
}

// Viewport returns the current surface dimensions
func (e *Engine) Viewport() Viewport {
	return e.view
}

// Frames returns how many ticks have run
func (e *Engine) Frames() uint64 {
	return e.frames
}

// SetTarget sets the target amplitude of partial i
func (e *Engine) SetTarget(i int, v float64) error {
	return e.bank.SetTarget(i, v)
}

// NudgeTarget moves partial i's target by delta
func (e *Engine) NudgeTarget(i int, delta float64) error {
	p, err := e.bank.Partial(i)
	if err != nil {
		return err
	}
	return e.bank.SetTarget(i, p.Target+delta)
}

// SelectionEnter starts highlighting partial i
func (e *Engine) SelectionEnter(i int) error {
	if i < 0 || i >= e.bank.Len() {
		return newIndexError("selection enter", i, e.bank.Len())
	}
	e.sel.Enter(i)
	return nil
}

// SelectionLeave ends the highlight of partial i
func (e *Engine) SelectionLeave(i int) error {
	if i < 0 || i >= e.bank.Len() {
		return newIndexError("selection leave", i, e.bank.Len())
	}
	e.sel.Leave(i)
	return nil
}

// ApplyPreset retargets every partial to the preset's amplitudes
func (e *Engine) ApplyPreset(p Preset) {
	for i, v := range Targets(p, e.bank.Len()) {
		// i is always in range here
		_ = e.bank.SetTarget(i, v)
	}
	debug.Log("preset", "applied %s to %d partials", p, e.bank.Len())
}

// ApplyPresetName applies a preset by name. Unknown names change nothing
// and return false.
func (e *Engine) ApplyPresetName(name string) bool {
	p, ok := ParsePreset(name)
	if !ok {
		debug.Log("preset", "ignoring unknown preset %q", name)
		return false
	}
	e.ApplyPreset(p)
	return true
}

// Resize swaps in new surface dimensions in one step
func (e *Engine) Resize(width, height, scale float64) {
	if math.IsNaN(scale) || scale <= 0 {
		scale = 1
	}
	if math.IsNaN(width) || width < 0 {
		width = 0
	}
	if math.IsNaN(height) || height < 0 {
		height = 0
	}
	e.view = Viewport{Width: width, Height: height, Scale: scale}
	debug.Log("resize", "viewport %.0fx%.0f scale %.2f", width, height, scale)
}

// Tick advances time and amplitudes, then synthesizes and submits a frame.
// A viewport without pixels skips synthesis but still smooths.
func (e *Engine) Tick() {
	e.time += TimeStep
	e.frames++
	e.smoother.Advance(e.bank)

	width := e.view.Pixels()
	if width == 0 {
		debug.LogEvery(120, "tick", "skipping render, viewport width %.2f", e.view.Width)
		return
	}

	f := Frame{
		Time:     e.time,
		Viewport: e.view,
		Selected: -1,
	}
	if idx, ok := e.sel.Shown(); ok {
		f.Selected = idx
		_, f.Active = e.sel.Active()
		f.Single = GenerateSingle(e.bank.partials[idx], width, e.time)
	}
	f.Sum = GenerateSum(e.bank.partials, width, e.time)

	if e.sink != nil {
		e.sink.DrawFrame(f)
	}
}
