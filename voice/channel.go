// Package voice holds the fixed playback channels and the allocation policy
// used for one-shot sounds.
package voice

import "fmt"

// Clip is a resolved, decoded sound ready to be handed to a Source.
type Clip struct {
	Key  string
	PCM  []byte
	Gain float64 // per-clip volume multiplier, 0 means 1
}

// Source is the device-side playback handle behind a channel.
type Source interface {
	Start(clip Clip, volume float64, loop bool)
	Stop()
	IsPlaying() bool
	SetVolume(volume float64)
}

// Output is the mixer group a channel is routed through.
type Output interface {
	Gain() float64
}

// Category groups channels by purpose
type Category int

const (
	BGM Category = iota
	SE
	UI
)

func (c Category) String() string {
	switch c {
	case BGM:
		return "BGM"
	case SE:
		return "SE"
	case UI:
		return "UI"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Channel is one playback slot. It keeps the volume requested by the audio
// code separate from the group gain applied on the way to the source.
type Channel struct {
	ID        string
	LastStart float64 // game-clock seconds of the last Play

	source Source
	output Output
	volume float64
	key    string
}

// NewChannel wraps source as a channel named id.
func NewChannel(id string, source Source) *Channel {
	return &Channel{ID: id, source: source}
}

// Play stops whatever the channel holds and starts clip.
func (c *Channel) Play(clip Clip, volume float64, loop bool, now float64) {
	if c.source == nil {
		return
	}
	c.source.Stop()
	c.volume = volume
	c.key = clip.Key
	c.LastStart = now
	c.source.Start(clip, c.effective(), loop)
}

func (c *Channel) Stop() {
	if c.source == nil {
		return
	}
	c.source.Stop()
}

func (c *Channel) IsPlaying() bool {
	return c.source != nil && c.source.IsPlaying()
}

// Volume returns the channel's own volume, before group gain.
func (c *Channel) Volume() float64 {
	return c.volume
}

func (c *Channel) SetVolume(volume float64) {
	c.volume = volume
	if c.source != nil {
		c.source.SetVolume(c.effective())
	}
}

// Key is the clip key of the most recent Play.
func (c *Channel) Key() string {
	return c.key
}

// Route sends the channel through out. A nil out plays at unit gain.
func (c *Channel) Route(out Output) {
	c.output = out
	c.Refresh()
}

// Refresh re-applies the group gain, e.g. after a mixer parameter changed.
func (c *Channel) Refresh() {
	if c.source != nil && c.IsPlaying() {
		c.source.SetVolume(c.effective())
	}
}

func (c *Channel) effective() float64 {
	if c.output == nil {
		return c.volume
	}
	return c.volume * c.output.Gain()
}
