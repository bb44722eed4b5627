package theme

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols

	Background colorful.Color
	Grid       colorful.Color
	Muted      colorful.Color
	Text       colorful.Color
	Single     colorful.Color // individual harmonic trace
	Sum        colorful.Color // summed trace
}

type Symbols struct {
	BarFill   rune // ━ filled part of a slider
	BarEmpty  rune // ─ unfilled part
	BarCenter rune // ┼ zero mark
	Thumb     rune // ● target position
	Cursor    rune // ▶ keyboard cursor
	NoCursor  rune // blank
}

func defaultSymbols() Symbols {
	return Symbols{
		BarFill:   '━',
		BarEmpty:  '─',
		BarCenter: '┼',
		Thumb:     '●',
		Cursor:    '▶',
		NoCursor:  ' ',
	}
}

// Role positions used when a palette has no fixed layout (0-1)
const (
	RoleBG     = 0.0
	RoleGrid   = 0.15
	RoleMuted  = 0.3
	RoleSingle = 0.55
	RoleSum    = 0.8
	RoleFG     = 1.0
)

// scope.gpl is laid out by role, in this order
const (
	scopeBackground = iota
	scopeGrid
	scopeMuted
	scopeText
	scopeSingle
	scopeSum
)

// Default returns the built-in scope theme
func Default() *Theme {
	p, err := Builtin("scope")
	if err != nil {
		panic(fmt.Sprintf("builtin scope palette: %v", err))
	}
	return &Theme{
		Palette:    p,
		Symbols:    defaultSymbols(),
		Background: p.Index(scopeBackground),
		Grid:       p.Index(scopeGrid),
		Muted:      p.Index(scopeMuted),
		Text:       p.Index(scopeText),
		Single:     p.Index(scopeSingle),
		Sum:        p.Index(scopeSum),
	}
}

// New maps an arbitrary gradient palette onto the colour roles
func New(palette *Palette) *Theme {
	return &Theme{
		Palette:    palette,
		Symbols:    defaultSymbols(),
		Background: palette.Lookup(RoleBG),
		Grid:       palette.Lookup(RoleGrid),
		Muted:      palette.Lookup(RoleMuted),
		Text:       palette.Lookup(RoleFG),
		Single:     palette.Lookup(RoleSingle),
		Sum:        palette.Lookup(RoleSum),
	}
}

// Load picks a theme by builtin palette name or GPL file path. An empty
// name gives the default theme.
func Load(name string) (*Theme, error) {
	if name == "" || name == "scope" {
		return Default(), nil
	}
	if _, err := os.Stat(name); err == nil {
		p, err := LoadGPL(name)
		if err != nil {
			return nil, err
		}
		return New(p), nil
	}
	p, err := Builtin(name)
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// SliderColor is green for positive values and red for negative ones,
// more saturated the further from zero.
func (t *Theme) SliderColor(v float64) colorful.Color {
	hue := 120.0
	if v < 0 {
		hue = 0
	}
	sat := 0.5 + math.Min(math.Abs(v), 1)*0.5
	return colorful.Hsl(hue, sat, 0.5).Clamped()
}

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return Lip(t.Text)
}

func (t *Theme) Dim() lipgloss.Color {
	return Lip(t.Muted)
}

func (t *Theme) Accent() lipgloss.Color {
	return Lip(t.Single)
}

func (t *Theme) Secondary() lipgloss.Color {
	return Lip(t.Sum)
}

// Lip converts a colour for use in lipgloss styles
func Lip(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}
