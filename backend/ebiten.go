// Package backend plays voice channels through ebiten's audio package.
package backend

import (
	"bytes"
	"io"
	"log"
	"sync"

	"github.com/automoto/soundmux/sound"
	"github.com/automoto/soundmux/voice"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	sharedContext *audio.Context
	contextOnce   sync.Once
)

// SharedContext returns the process-wide audio context. ebiten allows only
// one, so the sample rate of the first call wins.
func SharedContext(sampleRate int) *audio.Context {
	contextOnce.Do(func() {
		sharedContext = audio.CurrentContext()
		if sharedContext == nil {
			sharedContext = audio.NewContext(sampleRate)
		}
	})
	return sharedContext
}

// EbitenSource plays clips on an *audio.Player. A new player is created for
// every Start and the old one is closed.
type EbitenSource struct {
	name    string
	context *audio.Context
	player  *audio.Player
}

func NewSource(ctx *audio.Context, name string) *EbitenSource {
	return &EbitenSource{name: name, context: ctx}
}

// NewFactory creates EbitenSources on ctx for the sound manager.
func NewFactory(ctx *audio.Context) sound.SourceFactory {
	return func(category voice.Category, index int) voice.Source {
		return NewSource(ctx, category.String())
	}
}

func (s *EbitenSource) Start(clip voice.Clip, volume float64, loop bool) {
	s.closePlayer()
	if s.context == nil {
		return
	}

	var src io.Reader = bytes.NewReader(clip.PCM)
	if loop && len(clip.PCM) > 0 {
		src = audio.NewInfiniteLoop(bytes.NewReader(clip.PCM), int64(len(clip.PCM)))
	}
	player, err := s.context.NewPlayer(src)
	if err != nil {
		log.Printf("Warning: Could not create %s player for %q: %v", s.name, clip.Key, err)
		return
	}
	player.SetVolume(clampVolume(volume))
	player.Play()
	s.player = player
}

func (s *EbitenSource) Stop() {
	s.closePlayer()
}

func (s *EbitenSource) IsPlaying() bool {
	return s.player != nil && s.player.IsPlaying()
}

func (s *EbitenSource) SetVolume(volume float64) {
	if s.player != nil {
		s.player.SetVolume(clampVolume(volume))
	}
}

func (s *EbitenSource) closePlayer() {
	if s.player == nil {
		return
	}
	if err := s.player.Close(); err != nil {
		log.Printf("Warning: Could not close %s player: %v", s.name, err)
	}
	s.player = nil
}

func clampVolume(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
