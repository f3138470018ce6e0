// Package voicetest provides an in-memory voice.Source for tests and tools
// that run without an audio device.
package voicetest

import "github.com/automoto/soundmux/voice"

// Source records what the channel asked it to do.
type Source struct {
	Clip    voice.Clip
	Loop    bool
	Vol     float64
	Playing bool
	Starts  int
	Stops   int
}

func (s *Source) Start(clip voice.Clip, volume float64, loop bool) {
	s.Clip = clip
	s.Vol = volume
	s.Loop = loop
	s.Playing = true
	s.Starts++
}

func (s *Source) Stop() {
	if s.Playing {
		s.Stops++
	}
	s.Playing = false
}

func (s *Source) IsPlaying() bool { return s.Playing }

func (s *Source) SetVolume(volume float64) { s.Vol = volume }

// Finish ends playback as if the clip ran out.
func (s *Source) Finish() { s.Playing = false }

// Sources returns n fresh sources, both as concrete values and as voice.Source.
func Sources(n int) ([]*Source, []voice.Source) {
	fakes := make([]*Source, n)
	srcs := make([]voice.Source, n)
	for i := range fakes {
		fakes[i] = &Source{}
		srcs[i] = fakes[i]
	}
	return fakes, srcs
}

// Factory builds Sources on demand and remembers them by category and index.
type Factory struct {
	Made map[voice.Category][]*Source
}

func NewFactory() *Factory {
	return &Factory{Made: make(map[voice.Category][]*Source)}
}

func (f *Factory) New(category voice.Category, index int) voice.Source {
	list := f.Made[category]
	for len(list) <= index {
		list = append(list, nil)
	}
	src := &Source{}
	list[index] = src
	f.Made[category] = list
	return src
}

// Get returns the source made for category/index, or nil.
func (f *Factory) Get(category voice.Category, index int) *Source {
	list := f.Made[category]
	if index < 0 || index >= len(list) {
		return nil
	}
	return list[index]
}
