package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGPL(t *testing.T) {
	src := `GIMP Palette
Name: two
Columns: 2
# comment
255   0   0	red
  0   0 255	blue
bogus line
`
	p, err := ParseGPL(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "two" || len(p.Colors) != 2 {
		t.Fatalf("palette = %q with %d colours", p.Name, len(p.Colors))
	}
	if p.Colors[0].Hex() != "#ff0000" || p.Colors[1].Hex() != "#0000ff" {
		t.Errorf("colours = %s %s", p.Colors[0].Hex(), p.Colors[1].Hex())
	}
	if got := p.Lookup(-1).Hex(); got != "#ff0000" {
		t.Errorf("Lookup below range = %s", got)
	}
	if got := p.Lookup(2).Hex(); got != "#0000ff" {
		t.Errorf("Lookup above range = %s", got)
	}
	if got := p.Index(9).Hex(); got != "#0000ff" {
		t.Errorf("Index past end = %s", got)
	}
}

func TestParseGPLEmpty(t *testing.T) {
	if _, err := ParseGPL(strings.NewReader("GIMP Palette\nName: none\n")); err == nil {
		t.Fatal("expected error for palette without colours")
	}
}

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if got := th.Single.Hex(); got != "#ec4899" {
		t.Errorf("single = %s", got)
	}
	if got := th.Sum.Hex(); got != "#0ea5e9" {
		t.Errorf("sum = %s", got)
	}
}

func TestLoad(t *testing.T) {
	th, err := Load("plasma")
	if err != nil {
		t.Fatal(err)
	}
	if th.Palette.Name != "plasma" {
		t.Errorf("name = %q", th.Palette.Name)
	}

	path := filepath.Join(t.TempDir(), "mono.gpl")
	if err := os.WriteFile(path, []byte("GIMP Palette\n0 0 0\n255 255 255\n"), 0644); err != nil {
		t.Fatal(err)
	}
	th, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Text.Hex() != "#ffffff" || th.Background.Hex() != "#000000" {
		t.Errorf("roles = %s on %s", th.Text.Hex(), th.Background.Hex())
	}

	if _, err := Load("no-such-palette"); err == nil {
		t.Error("unknown palette loaded")
	}
}

func TestSliderColor(t *testing.T) {
	th := Default()
	h, s, l := th.SliderColor(1).Hsl()
	if h < 119 || h > 121 || s < 0.99 || l < 0.49 || l > 0.51 {
		t.Errorf("positive full = %v %v %v", h, s, l)
	}
	h, s, _ = th.SliderColor(-0.5).Hsl()
	if (h > 1 && h < 359) || s < 0.74 || s > 0.76 {
		t.Errorf("negative half = %v %v", h, s)
	}
}
