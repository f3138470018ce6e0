package easing

import (
	"math"
	"testing"
)

const tolerance = 1e-5

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestEaseBoundaries(t *testing.T) {
	kinds := []Kind{Linear, InSine, OutSine, Kind(42)}
	cases := []struct {
		start, delta, duration float64
	}{
		{0, 1, 2},
		{1, -1, 0.5},
		{0.4, -0.4, 3},
		{0.25, 0.5, 1},
		{0.3, 0.4, 2},
		{0.1, 0.7, 0.3},
	}

	for _, k := range kinds {
		for _, c := range cases {
			if got := Ease(k, c.start, c.delta, 0, c.duration); got != c.start {
				t.Errorf("%v at t=0: got %v, want %v", k, got, c.start)
			}
			if got := Ease(k, c.start, c.delta, c.duration, c.duration); got != c.start+c.delta {
				t.Errorf("%v at t=d: got %v, want %v", k, got, c.start+c.delta)
			}
		}
	}
}

func TestEaseClampsElapsed(t *testing.T) {
	for _, k := range []Kind{Linear, InSine, OutSine} {
		if got := Ease(k, 0, 1, 10, 2); got != 1 {
			t.Errorf("%v past the end: got %v, want 1", k, got)
		}
		if got := Ease(k, 0.5, 0.5, -1, 2); got != 0.5 {
			t.Errorf("%v before start: got %v, want 0.5", k, got)
		}
	}
}

func TestEaseMidpoint(t *testing.T) {
	cases := []struct {
		kind Kind
		want float64
	}{
		{Linear, 0.5},
		{InSine, 1 - math.Cos(math.Pi/4)},
		{OutSine, math.Sin(math.Pi / 4)},
		{Kind(-3), 0.5},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			if got := Ease(c.kind, 0, 1, 1, 2); !near(got, c.want) {
				t.Fatalf("midpoint = %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Linear, InSine, OutSine} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("bounce"); err == nil {
		t.Errorf("expected error for unknown easing")
	}
	if got, _ := ParseKind(" Out_Sine "); got != OutSine {
		t.Errorf("ParseKind should trim and ignore case, got %v", got)
	}
}
