package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval=%s, want 100ms", fs.Interval())
	}
	t0 := time.Unix(1000, 0)

	steps := []struct {
		at   time.Duration
		want int
	}{
		{0, 1},
		{50 * time.Millisecond, 0},
		{250 * time.Millisecond, 2},
		{260 * time.Millisecond, 0},
		{10 * time.Second, maxCatchUp},
		{10*time.Second + 50*time.Millisecond, 0},
		{10*time.Second + 100*time.Millisecond, 1},
	}
	for _, s := range steps {
		if got := fs.Advance(t0.Add(s.at)); got != s.want {
			t.Fatalf("Advance(+%s)=%d, want %d", s.at, got, s.want)
		}
	}
}

func TestFixedStepIgnoresClockGoingBackwards(t *testing.T) {
	fs := NewFixedStep(60)
	t0 := time.Unix(50, 0)
	fs.Advance(t0)
	if got := fs.Advance(t0.Add(-time.Second)); got != 0 {
		t.Fatalf("Advance into the past returned %d ticks", got)
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval=%s, want 1/60s", fs.Interval())
	}
}
