package fade_test

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/soundmux/easing"
	"github.com/automoto/soundmux/fade"
	"github.com/automoto/soundmux/voice"
	"github.com/automoto/soundmux/voice/voicetest"
)

func playingChannel(volume float64) (*voice.Channel, *voicetest.Source) {
	src := &voicetest.Source{}
	ch := voice.NewChannel("BGM_0", src)
	ch.Play(voice.Clip{Key: "theme"}, volume, true, 0)
	return ch, src
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-5
}

func TestFadeInReachesEndVolumeAndKeepsPlaying(t *testing.T) {
	ch, src := playingChannel(0)
	s := fade.NewSession(ch)
	if err := s.FadeIn(1, 0.7, easing.Linear); err != nil {
		t.Fatalf("FadeIn: %v", err)
	}

	s.Tick(0.5)
	if !near(ch.Volume(), 0.35) {
		t.Fatalf("half way volume = %v, want 0.35", ch.Volume())
	}

	s.Tick(0.75)
	if ch.Volume() != 0.7 {
		t.Fatalf("final volume = %v, want exactly 0.7", ch.Volume())
	}
	if s.Elapsed() != 1 {
		t.Fatalf("elapsed = %v, want pinned at duration", s.Elapsed())
	}
	if !src.Playing || s.Kind() != fade.In || !s.Done() {
		t.Fatalf("fade in must finish playing with kind In, playing=%v kind=%v done=%v", src.Playing, s.Kind(), s.Done())
	}
}

func TestFadeOutStopsOnCompletion(t *testing.T) {
	for _, k := range []easing.Kind{easing.Linear, easing.InSine, easing.OutSine} {
		t.Run(k.String(), func(t *testing.T) {
			ch, src := playingChannel(0.9)
			s := fade.NewSession(ch)
			if err := s.FadeOut(2, k); err != nil {
				t.Fatalf("FadeOut: %v", err)
			}
			s.Tick(1)
			if !src.Playing {
				t.Fatalf("stopped before the fade finished")
			}
			s.Tick(1)
			if ch.Volume() != 0 {
				t.Fatalf("final volume = %v, want exactly 0", ch.Volume())
			}
			if src.Playing || s.IsPlaying() {
				t.Fatalf("fade out should stop the channel")
			}
		})
	}
}

func TestFadeOutInterruptingFadeInStartsFromCurrentVolume(t *testing.T) {
	ch, _ := playingChannel(0)
	s := fade.NewSession(ch)
	if err := s.FadeIn(2.5, 1, easing.Linear); err != nil {
		t.Fatalf("FadeIn: %v", err)
	}
	s.Tick(1)
	if !near(ch.Volume(), 0.4) {
		t.Fatalf("volume mid fade in = %v, want 0.4", ch.Volume())
	}

	if err := s.FadeOut(2, easing.Linear); err != nil {
		t.Fatalf("FadeOut: %v", err)
	}
	if s.StartVolume() != ch.Volume() || !near(s.StartVolume(), 0.4) {
		t.Fatalf("start volume = %v, want current 0.4, not 1.0", s.StartVolume())
	}
	if s.Elapsed() != 0 || s.EndVolume() != 0 {
		t.Fatalf("fade out must reset timer and target 0")
	}
}

func TestTickWithoutFadeIsNoop(t *testing.T) {
	ch, src := playingChannel(0.6)
	s := fade.NewSession(ch)
	s.Tick(10)
	if ch.Volume() != 0.6 || !src.Playing || s.Elapsed() != 0 {
		t.Fatalf("kind None must not touch the channel")
	}

	var detached fade.Session
	detached.Tick(1)
}

func TestInvalidDurationRejected(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		ch, _ := playingChannel(0.5)
		s := fade.NewSession(ch)
		if err := s.FadeIn(d, 1, easing.Linear); !errors.Is(err, fade.ErrInvalidDuration) {
			t.Errorf("FadeIn(%v) err = %v", d, err)
		}
		if err := s.FadeOut(d, easing.Linear); !errors.Is(err, fade.ErrInvalidDuration) {
			t.Errorf("FadeOut(%v) err = %v", d, err)
		}
		if s.Kind() != fade.None {
			t.Errorf("rejected fade changed kind to %v", s.Kind())
		}
	}
}
