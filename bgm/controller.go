// Package bgm crossfades background music across a fixed pair of channels.
package bgm

import (
	"github.com/automoto/soundmux/easing"
	"github.com/automoto/soundmux/fade"
	"github.com/automoto/soundmux/voice"
)

// Controller owns exactly two BGM channels. At most two sessions exist at a
// time: the track being heard (current) and the one fading away (previous).
type Controller struct {
	slots    [2]*voice.Channel
	current  *fade.Session
	previous *fade.Session

	crossfadeLoop bool
}

type Option func(*Controller)

// WithCrossfadeLoop sets whether tracks started by FadeTo loop.
func WithCrossfadeLoop(loop bool) Option {
	return func(c *Controller) {
		c.crossfadeLoop = loop
	}
}

func NewController(a, b *voice.Channel, opts ...Option) *Controller {
	c := &Controller{
		slots:         [2]*voice.Channel{a, b},
		crossfadeLoop: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Play cuts to clip on slot A without a fade. Playing the same clip again
// restarts it.
func (c *Controller) Play(clip voice.Clip, volume float64, loop bool) {
	c.slots[1].Stop()
	c.slots[0].Play(clip, volume, loop, 0)
	c.current = fade.NewSession(c.slots[0])
	c.previous = nil
}

// Stop silences both slots and drops any fade in flight.
func (c *Controller) Stop() {
	c.slots[0].Stop()
	c.slots[1].Stop()
	c.current = nil
	c.previous = nil
}

// FadeOut fades the current track. A crossfade's outgoing track keeps fading.
func (c *Controller) FadeOut(duration float64, e easing.Kind) error {
	if c.current == nil {
		return nil
	}
	return c.current.FadeOut(duration, e)
}

// FadeIn stops everything and fades clip in on slot A.
func (c *Controller) FadeIn(clip voice.Clip, duration, volume float64, e easing.Kind) error {
	session := fade.NewSession(c.slots[0])
	if err := session.FadeIn(duration, volume, e); err != nil {
		return err
	}
	c.Stop()
	c.slots[0].Play(clip, 0, true, 0)
	c.current = session
	return nil
}

// FadeTo crossfades from the current track to clip. With nothing playing it
// is a FadeIn. A crossfade already in flight loses its outgoing track.
func (c *Controller) FadeTo(clip voice.Clip, duration, volume float64, e easing.Kind) error {
	if !c.IsPlaying() {
		return c.FadeIn(clip, duration, volume, e)
	}

	outgoing := c.current
	other := c.slots[0]
	if outgoing.Target() == c.slots[0] {
		other = c.slots[1]
	}
	incoming := fade.NewSession(other)
	if err := incoming.FadeIn(duration, volume, e); err != nil {
		return err
	}

	if c.previous != nil {
		c.previous.Target().Stop()
	}
	c.previous = outgoing
	other.Play(clip, volume, c.crossfadeLoop, 0)
	c.current = incoming

	// duration was validated above, so this cannot fail
	_ = c.previous.FadeOut(duration, e)
	return nil
}

// Tick advances both sessions. Sessions whose channel stopped are dropped.
func (c *Controller) Tick(dt float64) {
	if c.current != nil {
		c.current.Tick(dt)
		if !c.current.IsPlaying() {
			c.current = nil
		}
	}
	if c.previous != nil {
		c.previous.Tick(dt)
		if !c.previous.IsPlaying() {
			c.previous = nil
		}
	}
}

func (c *Controller) IsPlaying() bool {
	return c.current != nil && c.current.IsPlaying()
}

// Volume is the current track's volume, 0 when nothing plays.
func (c *Controller) Volume() float64 {
	if !c.IsPlaying() {
		return 0
	}
	return c.current.Target().Volume()
}

// Key is the clip key of the current track, empty when nothing plays.
func (c *Controller) Key() string {
	if !c.IsPlaying() {
		return ""
	}
	return c.current.Target().Key()
}

func (c *Controller) Current() *fade.Session { return c.current }
func (c *Controller) Previous() *fade.Session { return c.previous }

// ActiveSessions counts non-nil sessions; never more than two.
func (c *Controller) ActiveSessions() int {
	n := 0
	if c.current != nil {
		n++
	}
	if c.previous != nil {
		n++
	}
	return n
}

// Slot returns BGM channel 0 or 1.
func (c *Controller) Slot(i int) *voice.Channel {
	if i < 0 || i > 1 {
		return nil
	}
	return c.slots[i]
}
