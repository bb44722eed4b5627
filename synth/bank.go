package synth

import (
	"fmt"
	"math"
)

// DefaultHarmonics is the partial count used when none is configured
const DefaultHarmonics = 12

// Partial is one sinusoidal component of the composite wave
type Partial struct {
	Index     int
	Frequency int     // harmonic number, always Index+1
	Amplitude float64 // displayed value, chases Target
	Target    float64 // user-set goal
}

// Bank holds a fixed set of partials. It is never resized after NewBank.
type Bank struct {
	partials []Partial
}

// NewBank creates n silent partials with frequencies 1..n
func NewBank(n int) *Bank {
	if n < 1 {
		panic(fmt.Sprintf("synth: bank needs at least one partial, got %d", n))
	}
	b := &Bank{partials: make([]Partial, n)}
	for i := range b.partials {
		b.partials[i] = Partial{Index: i, Frequency: i + 1}
	}
	return b
}

// Len returns the number of partials
func (b *Bank) Len() int {
	return len(b.partials)
}

// Partial returns a copy of the partial at index i
func (b *Bank) Partial(i int) (Partial, error) {
	if i < 0 || i >= len(b.partials) {
		return Partial{}, newIndexError("partial", i, len(b.partials))
	}
	return b.partials[i], nil
}

// Partials returns a snapshot of all partials
func (b *Bank) Partials() []Partial {
	out := make([]Partial, len(b.partials))
	copy(out, b.partials)
	return out
}

// SetTarget stores a clamped target amplitude. The displayed amplitude is
// left alone; the smoother moves it on later ticks.
func (b *Bank) SetTarget(i int, v float64) error {
	if i < 0 || i >= len(b.partials) {
		return newIndexError("set target", i, len(b.partials))
	}
	b.partials[i].Target = Clamp(v)
	return nil
}

// Clamp limits v to [-1, 1]. NaN maps to 0.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
