package synth

import (
	"errors"
	"math"
	"testing"
)

func TestNewBank(t *testing.T) {
	b := NewBank(DefaultHarmonics)
	if b.Len() != 12 {
		t.Fatalf("Len = %d, want 12", b.Len())
	}
	for i, p := range b.Partials() {
		if p.Index != i || p.Frequency != i+1 {
			t.Errorf("partial %d: index %d freq %d", i, p.Index, p.Frequency)
		}
		if p.Amplitude != 0 || p.Target != 0 {
			t.Errorf("partial %d not silent: %+v", i, p)
		}
	}
}

func TestNewBankPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero partials")
		}
	}()
	NewBank(0)
}

func TestSetTargetClamps(t *testing.T) {
	b := NewBank(4)
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-0.25, -0.25},
		{1.2732, 1},
		{-7, -1},
		{math.Inf(1), 1},
		{math.Inf(-1), -1},
		{math.NaN(), 0},
		{1, 1},
		{-1, -1},
	}
	for _, tt := range tests {
		if err := b.SetTarget(2, tt.in); err != nil {
			t.Fatalf("SetTarget(%v): %v", tt.in, err)
		}
		p, _ := b.Partial(2)
		if p.Target != tt.want {
			t.Errorf("SetTarget(%v) target = %v, want %v", tt.in, p.Target, tt.want)
		}
		if p.Amplitude != 0 {
			t.Errorf("SetTarget(%v) moved amplitude to %v", tt.in, p.Amplitude)
		}
	}
}

func TestSetTargetIndexError(t *testing.T) {
	b := NewBank(3)
	_ = b.SetTarget(1, 0.4)
	for _, idx := range []int{-1, 3, 100} {
		err := b.SetTarget(idx, 0.9)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("SetTarget(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
		var ie *IndexError
		if !errors.As(err, &ie) || ie.Index != idx || ie.Len != 3 {
			t.Errorf("SetTarget(%d) err = %#v", idx, err)
		}
	}
	p, _ := b.Partial(1)
	if p.Target != 0.4 {
		t.Errorf("failed calls changed other state: target = %v", p.Target)
	}
}

func TestSmootherConvergesMonotonically(t *testing.T) {
	b := NewBank(1)
	s := NewSmoother()
	b.partials[0].Amplitude = -0.5
	_ = b.SetTarget(0, 0.75)
	start := 0.75 - (-0.5)

	prev := b.partials[0].Amplitude
	for k := 1; k <= 60; k++ {
		s.Advance(b)
		a := b.partials[0].Amplitude
		if a <= prev {
			t.Fatalf("tick %d: amplitude %v not above previous %v", k, a, prev)
		}
		if a > 0.75 {
			t.Fatalf("tick %d: overshoot %v", k, a)
		}
		want := math.Pow(0.9, float64(k)) * start
		if got := 0.75 - a; math.Abs(got-want) > 1e-12 {
			t.Fatalf("tick %d: gap %v, want %v", k, got, want)
		}
		prev = a
	}
}

func TestSmootherRetargetMidway(t *testing.T) {
	b := NewBank(1)
	s := NewSmoother()
	_ = b.SetTarget(0, 1)
	for i := 0; i < 5; i++ {
		s.Advance(b)
	}
	before := b.partials[0].Amplitude
	_ = b.SetTarget(0, -1)
	if b.partials[0].Amplitude != before {
		t.Fatal("retarget snapped amplitude")
	}
	s.Advance(b)
	want := before + (-1-before)*0.1
	if got := b.partials[0].Amplitude; math.Abs(got-want) > 1e-12 {
		t.Errorf("after retarget amplitude = %v, want %v", got, want)
	}
}

func TestTicksToSettle(t *testing.T) {
	s := NewSmoother()
	n := s.TicksToSettle(1e-3, 1)
	want := int(math.Ceil(math.Log(1e-3) / math.Log(0.9)))
	if n != want {
		t.Fatalf("TicksToSettle = %d, want %d", n, want)
	}

	b := NewBank(1)
	_ = b.SetTarget(0, 1)
	for i := 0; i < n; i++ {
		s.Advance(b)
	}
	if gap := 1 - b.partials[0].Amplitude; gap > 1e-3 {
		t.Errorf("gap after %d ticks = %v", n, gap)
	}
	if s.TicksToSettle(0.1, 0.05) != 0 {
		t.Error("gap already inside eps should need 0 ticks")
	}
}
