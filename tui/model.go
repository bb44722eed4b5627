package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wave-playground/debug"
	"wave-playground/midi"
	"wave-playground/synth"
	"wave-playground/theme"
	"wave-playground/widgets"
)

const (
	headerRows = 2 // title + blank
	footerRows = 2 // blank + help
	labelRows  = 2 // one label above each scope
	gapCols    = 2 // between sliders and scopes

	coarseStep = 0.05
	fineStep   = 0.01

	// releaseDelay keeps the highlight briefly after a click ends
	releaseDelay = 100 * time.Millisecond
)

// layout holds the panel geometry computed on resize
type layout struct {
	plotCols   int
	singleRows int
	sumRows    int
}

type Model struct {
	Engine    *synth.Engine
	DeviceMgr *midi.DeviceManager // nil when MIDI is off
	Theme     *theme.Theme

	fps     int
	scope   *scope
	sliders *widgets.Sliders
	meter   *widgets.PeakMeter
	keys    keyMap
	help    help.Model

	width, height int
	layout        layout

	cursor   int // keyboard row
	hovered  int // row under the mouse, -1 for none
	dragging int // row being dragged, -1 for none
	devices  []string

	quitting bool
}

// Options tune the host loop and drawing
type Options struct {
	FPS       int
	LineWidth float64
}

type frameMsg time.Time

type releaseMsg struct{ index int }

type ControlMsg midi.Event

type DeviceEventMsg midi.DeviceEvent

// NewModel wires the engine to a pair of terminal scopes
func NewModel(engine *synth.Engine, deviceMgr *midi.DeviceManager, th *theme.Theme, opts Options) Model {
	if opts.FPS < 1 {
		opts.FPS = 60
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	sc := newScope(th, opts.LineWidth)
	engine.SetSink(sc)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(th.FG())
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(th.Dim())
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc

	return Model{
		Engine:    engine,
		DeviceMgr: deviceMgr,
		Theme:     th,
		fps:       opts.FPS,
		scope:     sc,
		sliders:   widgets.NewSliders(th),
		meter:     widgets.NewPeakMeter(th, opts.FPS),
		keys:      newKeyMap(),
		help:      h,
		hovered:   -1,
		dragging:  -1,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// ListenForControls waits for the next knob event
func ListenForControls(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-deviceMgr.Controls()
		if !ok {
			return nil
		}
		return ControlMsg(ev)
	}
}

// ListenForDevices waits for the next hot-plug event
func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(ev)
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick()}
	if m.DeviceMgr != nil {
		cmds = append(cmds, ListenForControls(m.DeviceMgr), ListenForDevices(m.DeviceMgr))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.Engine.Tick()
		m.meter.Update(m.scope.peak())
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case releaseMsg:
		m.leave(msg.index)

	case ControlMsg:
		m.handleControl(midi.Event(msg))
		if m.DeviceMgr != nil {
			return m, ListenForControls(m.DeviceMgr)
		}

	case DeviceEventMsg:
		m.handleDevice(midi.DeviceEvent(msg))
		if m.DeviceMgr != nil {
			return m, ListenForDevices(m.DeviceMgr)
		}
	}

	return m, nil
}

// resize recomputes the layout and swaps the engine viewport and both
// canvases together, before the next frame can render.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	plotCols := max(0, width-widgets.SliderCols-gapCols)
	avail := max(0, height-headerRows-footerRows-labelRows)
	singleRows := avail / 3
	m.layout = layout{
		plotCols:   plotCols,
		singleRows: singleRows,
		sumRows:    avail - singleRows,
	}

	m.scope.resize(plotCols, m.layout.singleRows, m.layout.sumRows)
	w, h := m.scope.sum.Size()
	m.Engine.Resize(w, h, 1)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.Engine.Bank().Len()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, n)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, n)

	case key.Matches(msg, m.keys.Inc):
		m.nudge(coarseStep)

	case key.Matches(msg, m.keys.Dec):
		m.nudge(-coarseStep)

	case key.Matches(msg, m.keys.FineInc):
		m.nudge(fineStep)

	case key.Matches(msg, m.keys.FineDec):
		m.nudge(-fineStep)

	case key.Matches(msg, m.keys.Zero):
		m.enter(m.cursor)
		m.setTarget(m.cursor, 0)

	case key.Matches(msg, m.keys.Release):
		m.leave(m.cursor)
		if m.hovered >= 0 {
			m.leave(m.hovered)
			m.hovered = -1
		}

	case key.Matches(msg, m.keys.Square):
		m.Engine.ApplyPreset(synth.PresetSquare)

	case key.Matches(msg, m.keys.Sawtooth):
		m.Engine.ApplyPreset(synth.PresetSawtooth)

	case key.Matches(msg, m.keys.Triangle):
		m.Engine.ApplyPreset(synth.PresetTriangle)

	case key.Matches(msg, m.keys.Reset):
		m.Engine.ApplyPreset(synth.PresetReset)
	}
	return m, nil
}

func (m *Model) moveCursor(delta, n int) {
	next := max(0, min(n-1, m.cursor+delta))
	if next == m.cursor {
		return
	}
	m.leave(m.cursor)
	m.cursor = next
	m.enter(next)
}

func (m *Model) nudge(delta float64) {
	m.enter(m.cursor)
	if err := m.Engine.NudgeTarget(m.cursor, delta); err != nil {
		debug.Log("input", "nudge: %v", err)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	n := m.Engine.Bank().Len()
	x, y := msg.X, msg.Y-headerRows
	hit, ok := m.sliders.HitTest(x, y, n)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok {
			break
		}
		m.cursor = hit.Index
		m.enter(hit.Index)
		m.dragging = hit.Index
		if hit.OnBar {
			m.setTarget(hit.Index, hit.Value)
		}

	case tea.MouseActionMotion:
		if m.dragging >= 0 {
			m.setTarget(m.dragging, m.sliders.ValueAt(x))
			break
		}
		m.hover(hit.Index, ok)

	case tea.MouseActionRelease:
		if m.dragging < 0 {
			break
		}
		idx := m.dragging
		m.dragging = -1
		return m, tea.Tick(releaseDelay, func(time.Time) tea.Msg {
			return releaseMsg{index: idx}
		})
	}
	return m, nil
}

// hover follows the pointer across slider rows, entering the row under it
// and leaving the one it came from.
func (m *Model) hover(idx int, ok bool) {
	if ok && idx == m.hovered {
		return
	}
	if m.hovered >= 0 {
		m.leave(m.hovered)
		m.hovered = -1
	}
	if ok {
		m.enter(idx)
		m.hovered = idx
	}
}

func (m *Model) handleControl(ev midi.Event) {
	switch ev.Kind {
	case midi.KnobTurn:
		m.setTarget(ev.Harmonic, ev.Value)
	case midi.KnobTouch:
		m.enter(ev.Harmonic)
	case midi.KnobRelease:
		m.leave(ev.Harmonic)
	}
}

func (m *Model) handleDevice(ev midi.DeviceEvent) {
	switch ev.Type {
	case midi.DeviceConnected:
		m.devices = append(m.devices, ev.ID)
	case midi.DeviceDisconnected:
		for i, id := range m.devices {
			if id == ev.ID {
				m.devices = append(m.devices[:i], m.devices[i+1:]...)
				break
			}
		}
	}
}

func (m *Model) enter(i int) {
	if err := m.Engine.SelectionEnter(i); err != nil {
		debug.Log("input", "enter: %v", err)
	}
}

func (m *Model) leave(i int) {
	if err := m.Engine.SelectionLeave(i); err != nil {
		debug.Log("input", "leave: %v", err)
	}
}

func (m *Model) setTarget(i int, v float64) {
	if err := m.Engine.SetTarget(i, v); err != nil {
		debug.Log("input", "set target: %v", err)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Dim())

	status := fmt.Sprintf("  %d harmonics  t=%.2f", m.Engine.Bank().Len(), m.Engine.Time())
	if len(m.devices) > 0 {
		status += "  midi: " + strings.Join(m.devices, ", ")
	}
	header := titleStyle.Render("wave-playground") + dimStyle.Render(status)

	active, ok := m.Engine.Selection().Active()
	if !ok {
		active = -1
	}
	m.sliders.Cursor = m.cursor
	left := m.sliders.View(m.Engine.Bank().Partials(), active) +
		"\n\n" + m.meter.View(widgets.SliderCols)

	body := left
	if m.layout.plotCols > 0 {
		right := m.singleLabel() + "\n" + m.scope.single.String() + "\n" +
			lipgloss.NewStyle().Foreground(m.Theme.Secondary()).Render("Sum of Waves") + "\n" +
			m.scope.sum.String()
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapCols), right)
	}

	return header + "\n\n" + body + "\n\n" + m.help.View(m.keys)
}

func (m Model) singleLabel() string {
	style := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	if idx, ok := m.Engine.Selection().Active(); ok {
		p, err := m.Engine.Bank().Partial(idx)
		if err == nil {
			return style.Bold(true).Render(fmt.Sprintf("Wave %d (freq: %d)", idx+1, p.Frequency))
		}
	}
	return style.Render("Individual Wave")
}
