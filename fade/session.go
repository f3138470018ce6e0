// Package fade drives a single channel's volume over time.
package fade

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/soundmux/easing"
	"github.com/automoto/soundmux/voice"
)

// ErrInvalidDuration rejects fades that would divide by zero or never end.
var ErrInvalidDuration = errors.New("fade: duration must be positive and finite")

// Kind is the direction of a fade
type Kind int

const (
	None Kind = iota
	In
	Out
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case In:
		return "FadeIn"
	case Out:
		return "FadeOut"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Session tracks one play on one channel. A new Session is made for every
// play; the target channel never changes after construction.
type Session struct {
	kind        Kind
	duration    float64
	elapsed     float64
	startVolume float64
	endVolume   float64
	easing      easing.Kind
	target      *voice.Channel
}

func NewSession(target *voice.Channel) *Session {
	return &Session{target: target}
}

func validDuration(d float64) error {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}
	return nil
}

// FadeIn ramps from silence to endVolume.
func (s *Session) FadeIn(duration, endVolume float64, e easing.Kind) error {
	if err := validDuration(duration); err != nil {
		return err
	}
	s.kind = In
	s.duration = duration
	s.elapsed = 0
	s.startVolume = 0
	s.endVolume = endVolume
	s.easing = e
	return nil
}

// FadeOut ramps from the channel's current volume to silence and then stops
// the channel. Interrupting a fade in continues from where it got to.
func (s *Session) FadeOut(duration float64, e easing.Kind) error {
	if err := validDuration(duration); err != nil {
		return err
	}
	s.kind = Out
	s.duration = duration
	s.elapsed = 0
	if s.target != nil {
		s.startVolume = s.target.Volume()
	}
	s.endVolume = 0
	s.easing = e
	return nil
}

// Tick advances the fade by dt seconds and writes the new volume.
func (s *Session) Tick(dt float64) {
	if s.target == nil || s.kind == None {
		return
	}

	s.elapsed += dt
	if s.elapsed > s.duration {
		s.elapsed = s.duration
	}

	volume := s.endVolume
	if s.elapsed < s.duration {
		volume = easing.Ease(s.easing, s.startVolume, s.endVolume-s.startVolume, s.elapsed, s.duration)
	}
	s.target.SetVolume(volume)

	if s.elapsed >= s.duration && s.kind == Out {
		s.target.Stop()
	}
}

func (s *Session) Kind() Kind { return s.kind }
func (s *Session) Duration() float64 { return s.duration }
func (s *Session) Elapsed() float64 { return s.elapsed }
func (s *Session) StartVolume() float64 { return s.startVolume }
func (s *Session) EndVolume() float64 { return s.endVolume }
func (s *Session) Easing() easing.Kind { return s.easing }
func (s *Session) Target() *voice.Channel { return s.target }
func (s *Session) IsPlaying() bool { return s.target != nil && s.target.IsPlaying() }
func (s *Session) Done() bool { return s.kind != None && s.elapsed >= s.duration }
