package sound_test

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/easing"
	"github.com/automoto/soundmux/mixer"
	"github.com/automoto/soundmux/settings"
	"github.com/automoto/soundmux/sound"
	"github.com/automoto/soundmux/voice"
	"github.com/automoto/soundmux/voice/voicetest"
)

type clips map[string]voice.Clip

func (c clips) Resolve(key string) (voice.Clip, error) {
	clip, ok := c[key]
	if !ok {
		return voice.Clip{}, sound.ErrClipNotFound
	}
	return clip, nil
}

var library = clips{
	"title":  {Key: "title"},
	"stage1": {Key: "stage1"},
	"stage2": {Key: "stage2"},
	"jump":   {Key: "jump"},
	"hit":    {Key: "hit", Gain: 0.5},
	"click":  {Key: "click"},
}

func newManager(t *testing.T) (*sound.Manager, *voicetest.Factory) {
	t.Helper()
	f := voicetest.NewFactory()
	m, err := sound.New(config.Audio, library, f.New)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, f
}

func TestNewBuildsAllChannels(t *testing.T) {
	_, f := newManager(t)
	if got := len(f.Made[voice.BGM]); got != 2 {
		t.Errorf("BGM channels = %d, want 2", got)
	}
	if got := len(f.Made[voice.SE]); got != config.Audio.MaxSEChannels {
		t.Errorf("SE channels = %d, want %d", got, config.Audio.MaxSEChannels)
	}
	if got := len(f.Made[voice.UI]); got != config.Audio.MaxUIChannels {
		t.Errorf("UI channels = %d, want %d", got, config.Audio.MaxUIChannels)
	}
}

func TestNewRejectsEmptyPool(t *testing.T) {
	cfg := config.Audio
	cfg.MaxUIChannels = 0
	_, err := sound.New(cfg, library, voicetest.NewFactory().New)
	if !errors.Is(err, voice.ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
}

func TestUnknownClipLeavesStateAlone(t *testing.T) {
	m, f := newManager(t)
	if err := m.PlayBGM("title", 1, true); err != nil {
		t.Fatalf("PlayBGM: %v", err)
	}

	if err := m.FadeToBGM("missing", 1, 1, easing.Linear); !errors.Is(err, sound.ErrClipNotFound) {
		t.Fatalf("err = %v, want ErrClipNotFound", err)
	}
	if m.CurrentBGMKey() != "title" {
		t.Fatalf("current = %q, want title", m.CurrentBGMKey())
	}

	if _, err := m.PlayEffect("missing", 1); !errors.Is(err, sound.ErrClipNotFound) {
		t.Fatalf("err = %v, want ErrClipNotFound", err)
	}
	if f.Get(voice.SE, 0).Starts != 0 {
		t.Fatalf("no effect should have started")
	}
}

func TestBGMCrossfadeThroughManager(t *testing.T) {
	m, _ := newManager(t)
	if err := m.FadeInBGM("stage1", 1, 0.8, easing.Linear); err != nil {
		t.Fatalf("FadeInBGM: %v", err)
	}
	m.Update(1)
	if math.Abs(m.CurrentBGMVolume()-0.8) > 1e-9 {
		t.Fatalf("volume = %v, want 0.8", m.CurrentBGMVolume())
	}

	if err := m.FadeToBGM("stage2", 2, 0.8, easing.Linear); err != nil {
		t.Fatalf("FadeToBGM: %v", err)
	}
	if m.CurrentBGMKey() != "stage2" {
		t.Fatalf("current = %q, want stage2", m.CurrentBGMKey())
	}
	m.Update(2)
	if m.Playing(voice.BGM) != 1 {
		t.Fatalf("outgoing track should be stopped after the crossfade")
	}

	if err := m.FadeOutBGM(0.5, easing.OutSine); err != nil {
		t.Fatalf("FadeOutBGM: %v", err)
	}
	m.Update(0.5)
	if m.IsPlayingBGM() {
		t.Fatalf("BGM should be silent after fade out")
	}
}

func TestPlayEffectAppliesClipGain(t *testing.T) {
	m, f := newManager(t)
	if _, err := m.PlayEffect("hit", 0.8); err != nil {
		t.Fatalf("PlayEffect: %v", err)
	}
	if got := f.Get(voice.SE, 0).Vol; math.Abs(got-0.4) > 1e-12 {
		t.Fatalf("volume = %v, want 0.4", got)
	}
}

func TestEffectsUseGameClockForEviction(t *testing.T) {
	m, f := newManager(t)
	n := config.Audio.MaxSEChannels
	for i := 0; i < n; i++ {
		if _, err := m.PlayEffect("jump", 1); err != nil {
			t.Fatalf("PlayEffect: %v", err)
		}
		m.Update(0.1)
	}

	tk, err := m.PlayEffect("hit", 1)
	if err != nil {
		t.Fatalf("PlayEffect: %v", err)
	}
	if tk.Channel != n-1 {
		t.Fatalf("stole channel %d, want newest %d", tk.Channel, n-1)
	}
	if f.Get(voice.SE, n-1).Clip.Key != "hit" {
		t.Fatalf("newest channel should now play hit")
	}
}

func TestStopTicketIgnoresReusedChannel(t *testing.T) {
	m, f := newManager(t)
	first, err := m.PlayUI("click", 1)
	if err != nil {
		t.Fatalf("PlayUI: %v", err)
	}
	if !first.Valid() || !m.TicketPlaying(first) {
		t.Fatalf("fresh ticket should be playing")
	}

	f.Get(voice.UI, 0).Finish()
	m.Update(0.1)
	last, err := m.PlayUI("click", 1)
	if err != nil {
		t.Fatalf("PlayUI: %v", err)
	}
	if last.Channel != first.Channel {
		t.Fatalf("setup: expected channel %d to be reused, got %d", first.Channel, last.Channel)
	}

	if m.StopTicket(first) {
		t.Fatalf("stale ticket must not stop the new sound")
	}
	if !m.TicketPlaying(last) {
		t.Fatalf("new sound should still play")
	}
	if !m.StopTicket(last) {
		t.Fatalf("current ticket should stop its sound")
	}
	if m.StopTicket(last) {
		t.Fatalf("stopping twice should report false")
	}
	if m.StopTicket(sound.Ticket{}) {
		t.Fatalf("zero ticket stops nothing")
	}
}

func TestMixerRoutingAndSettings(t *testing.T) {
	m, f := newManager(t)
	m.AttachMixer(mixer.NewBank(config.Mixer))

	if err := m.PlayBGM("title", 1, true); err != nil {
		t.Fatalf("PlayBGM: %v", err)
	}
	if _, err := m.PlayEffect("jump", 1); err != nil {
		t.Fatalf("PlayEffect: %v", err)
	}

	s := settings.Default()
	s.SetVolume(mixer.Master, 0.5)
	s.SetVolume(mixer.BGM, 0.5)
	m.LoadSetting(s)

	if got := m.GetVolume(mixer.BGM); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("GetVolume(BGM) = %v, want 0.5", got)
	}
	if got := f.Get(voice.BGM, 0).Vol; math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("BGM source volume = %v, want 0.25", got)
	}
	if got := f.Get(voice.SE, 0).Vol; math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("SE source volume = %v, want 0.5", got)
	}
	if m.CurrentBGMVolume() != 1 {
		t.Fatalf("channel volume should not include group gain, got %v", m.CurrentBGMVolume())
	}
}

func TestNoMixerPlaysAtChannelVolume(t *testing.T) {
	m, f := newManager(t)
	m.AttachMixer(nil)
	m.SetVolume(mixer.Master, 0.1)
	if _, err := m.PlayEffect("jump", 0.7); err != nil {
		t.Fatalf("PlayEffect: %v", err)
	}
	if got := f.Get(voice.SE, 0).Vol; got != 0.7 {
		t.Fatalf("volume = %v, want 0.7", got)
	}
	if m.GetVolume(mixer.Master) != 0 {
		t.Fatalf("GetVolume without mixer should be 0")
	}
}

func TestStopAll(t *testing.T) {
	m, _ := newManager(t)
	_ = m.PlayBGM("title", 1, true)
	_, _ = m.PlayEffect("jump", 1)
	_, _ = m.PlayUI("click", 1)
	m.StopAll()
	for _, c := range []voice.Category{voice.BGM, voice.SE, voice.UI} {
		if n := m.Playing(c); n != 0 {
			t.Errorf("%s still playing %d", c, n)
		}
	}
}

func TestUpdateIgnoresBadDelta(t *testing.T) {
	m, _ := newManager(t)
	m.Update(0.5)
	m.Update(-1)
	m.Update(math.NaN())
	if m.Clock() != 0.5 {
		t.Fatalf("clock = %v, want 0.5", m.Clock())
	}
}
