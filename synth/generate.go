package synth

import "math"

// Wobble parameters. The single-partial view moves a little more than the sum.
const (
	singleWobbleDepth = 0.02
	singleWobbleRate  = 2.0
	singleWobbleSlope = 0.01

	sumWobbleDepth = 0.015
	sumWobbleRate  = 1.5
	sumWobbleSlope = 0.008
)

// phase maps pixel x to the wave argument so the surface shows two periods
func phase(x, width int) float64 {
	return float64(x) / float64(width) * 4 * math.Pi
}

// GenerateSingle renders one partial across width pixels at the given time
func GenerateSingle(p Partial, width int, time float64) []float64 {
	if width <= 0 {
		return []float64{}
	}
	out := make([]float64, width)
	freq := float64(p.Frequency)
	for x := range out {
		wobble := singleWobbleDepth * math.Sin(singleWobbleRate*time+singleWobbleSlope*float64(x))
		out[x] = p.Amplitude * math.Sin(freq*phase(x, width)) * (1 + wobble)
	}
	return out
}

// GenerateSum renders the additive sum of all partials. The wobble term is
// shared by every partial at a given x.
func GenerateSum(partials []Partial, width int, time float64) []float64 {
	if width <= 0 {
		return []float64{}
	}
	out := make([]float64, width)
	for x := range out {
		t := phase(x, width)
		wobble := sumWobbleDepth * math.Sin(sumWobbleRate*time+sumWobbleSlope*float64(x))
		var sum float64
		for _, p := range partials {
			sum += p.Amplitude * math.Sin(float64(p.Frequency)*t) * (1 + wobble)
		}
		out[x] = sum
	}
	return out
}

// Peak returns the largest absolute sample in buf
func Peak(buf []float64) float64 {
	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}
