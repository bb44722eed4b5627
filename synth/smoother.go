package synth

import "math"

// DefaultSmoothing is the fraction of the remaining distance closed per tick
const DefaultSmoothing = 0.1

// Smoother is a single-pole exponential filter pulling each partial's
// amplitude toward its target. The gap shrinks by (1-K) every Advance.
type Smoother struct {
	K float64
}

// NewSmoother returns a smoother with the default constant
func NewSmoother() Smoother {
	return Smoother{K: DefaultSmoothing}
}

// Advance moves every amplitude one step toward its target
func (s Smoother) Advance(b *Bank) {
	for i := range b.partials {
		p := &b.partials[i]
		p.Amplitude += (p.Target - p.Amplitude) * s.K
	}
}

// TicksToSettle returns how many Advance calls bring a gap of diff within
// eps of the target.
func (s Smoother) TicksToSettle(eps, diff float64) int {
	diff = math.Abs(diff)
	if eps <= 0 || s.K <= 0 || s.K >= 1 {
		return -1
	}
	if diff <= eps {
		return 0
	}
	return int(math.Ceil(math.Log(eps/diff) / math.Log(1-s.K)))
}
