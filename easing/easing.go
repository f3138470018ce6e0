// Package easing maps a small set of fade curves onto gween's easing functions.
package easing

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// Kind selects an easing curve
type Kind int

const (
	Linear Kind = iota
	InSine
	OutSine
	kindCount
)

var funcs = [kindCount]ease.TweenFunc{
	Linear:  ease.Linear,
	InSine:  ease.InSine,
	OutSine: ease.OutSine,
}

var names = [kindCount]string{
	Linear:  "linear",
	InSine:  "in_sine",
	OutSine: "out_sine",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// ParseKind resolves a config name such as "out_sine" into a Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range names {
		if n == name {
			return Kind(k), nil
		}
	}
	return Linear, fmt.Errorf("unknown easing %q", name)
}

// Func returns the tween function for k. Unknown kinds fall back to Linear.
func Func(k Kind) ease.TweenFunc {
	if k < 0 || k >= kindCount {
		return ease.Linear
	}
	return funcs[k]
}

// Ease evaluates curve k from start towards start+delta at elapsed seconds of
// duration. elapsed is clamped to [0, duration]; duration must be positive.
// Both ends are exact; only the interior goes through gween's float32 curves.
func Ease(k Kind, start, delta, elapsed, duration float64) float64 {
	if elapsed >= duration {
		return start + delta
	}
	if elapsed <= 0 {
		return start
	}
	return float64(Func(k)(float32(elapsed), float32(start), float32(delta), float32(duration)))
}
