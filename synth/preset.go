package synth

import (
	"math"
	"strings"
)

// Preset names a classic waveform approximated by harmonic amplitudes
type Preset int

const (
	PresetSquare Preset = iota
	PresetSawtooth
	PresetTriangle
	PresetReset
)

var presetNames = map[Preset]string{
	PresetSquare:   "square",
	PresetSawtooth: "sawtooth",
	PresetTriangle: "triangle",
	PresetReset:    "reset",
}

// Presets lists every preset in display order
func Presets() []Preset {
	return []Preset{PresetSquare, PresetSawtooth, PresetTriangle, PresetReset}
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePreset looks a preset up by name, case-insensitively
func ParsePreset(name string) (Preset, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range presetNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

// Targets computes the target amplitude of each of n harmonics for preset p.
// Every value goes through Clamp, so square's fundamental (4/π) lands on 1.
func Targets(p Preset, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		h := float64(i + 1)
		odd := (i+1)%2 == 1
		var v float64
		switch p {
		case PresetSquare:
			if odd {
				v = 4 / (math.Pi * h)
			}
		case PresetSawtooth:
			v = 2 / (math.Pi * h)
			if !odd {
				v = -v
			}
		case PresetTriangle:
			if odd {
				sign := 1.0
				if ((i+1)/2)%2 != 0 {
					sign = -1
				}
				v = sign * 8 / (math.Pi * math.Pi * h * h)
			}
		case PresetReset:
			v = 0
		}
		out[i] = Clamp(v)
	}
	return out
}
