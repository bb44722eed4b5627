package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Inc      key.Binding
	Dec      key.Binding
	FineInc  key.Binding
	FineDec  key.Binding
	Zero     key.Binding
	Release  key.Binding
	Square   key.Binding
	Sawtooth key.Binding
	Triangle key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev wave")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next wave")),
		Inc:      key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "+0.05")),
		Dec:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "-0.05")),
		FineInc:  key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "+0.01")),
		FineDec:  key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "-0.01")),
		Zero:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "zero wave")),
		Release:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "release")),
		Square:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "square")),
		Sawtooth: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "sawtooth")),
		Triangle: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "triangle")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.Square, k.Sawtooth, k.Triangle, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Release},
		{k.Inc, k.Dec, k.FineInc, k.FineDec, k.Zero},
		{k.Square, k.Sawtooth, k.Triangle, k.Reset},
		{k.Help, k.Quit},
	}
}
