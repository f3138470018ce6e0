package systems

import (
	"fmt"
	"sort"

	"github.com/automoto/soundmux/assets"
	cfg "github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/fonts"
	"github.com/automoto/soundmux/mixer"
	"github.com/automoto/soundmux/voice"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// Playlist splits manifest keys into music tracks (anything a level uses)
// and effects, and cycles through each.
type Playlist struct {
	Tracks  []string
	Effects []string

	track  int
	effect int
}

func NewPlaylist(m *assets.Manifest) *Playlist {
	p := &Playlist{}
	p.Reset(m)
	return p
}

// Reset rebuilds the lists from m, e.g. after a manifest reload.
func (p *Playlist) Reset(m *assets.Manifest) {
	p.Tracks = p.Tracks[:0]
	p.Effects = p.Effects[:0]
	p.track, p.effect = -1, -1
	if m == nil {
		return
	}

	music := make(map[string]bool)
	for _, key := range m.Levels {
		music[key] = true
	}
	for key := range m.Sounds {
		if music[key] {
			p.Tracks = append(p.Tracks, key)
		} else {
			p.Effects = append(p.Effects, key)
		}
	}
	sort.Strings(p.Tracks)
	sort.Strings(p.Effects)
}

func (p *Playlist) NextTrack() (string, bool) {
	return next(p.Tracks, &p.track)
}

func (p *Playlist) NextEffect() (string, bool) {
	return next(p.Effects, &p.effect)
}

func next(list []string, idx *int) (string, bool) {
	if len(list) == 0 {
		return "", false
	}
	*idx = (*idx + 1) % len(list)
	return list[*idx], true
}

// NewUpdateSoundcheck turns input actions into sound requests while the
// volume menu is closed.
func NewUpdateSoundcheck(p *Playlist) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		if GetOrCreateSettingsMenu(e).IsOpen {
			return
		}
		input := getOrCreateInput(e)
		pressed := func(id cfg.ActionID) bool {
			return GetAction(input, id).JustPressed
		}

		switch {
		case pressed(cfg.ActionCrossfade):
			if key, ok := p.NextTrack(); ok {
				FadeToBGM(e, key, cfg.Audio.DefaultFadeSeconds, cfg.Audio.DefaultBGMVolume, defaultEasing())
			}
		case pressed(cfg.ActionPlayBGM):
			if key, ok := p.NextTrack(); ok {
				PlayBGM(e, key, cfg.Audio.DefaultBGMVolume, true)
			}
		case pressed(cfg.ActionFadeOutBGM):
			FadeOutBGM(e, cfg.Audio.DefaultFadeSeconds, defaultEasing())
		case pressed(cfg.ActionStopBGM):
			StopBGM(e)
		case pressed(cfg.ActionPlayEffect):
			if key, ok := p.NextEffect(); ok {
				PlayEffect(e, key, 1)
			}
		case pressed(cfg.ActionPlayUI):
			PlayUI(e, cfg.Audio.MenuSelectSound, 1)
		case pressed(cfg.ActionOpenVolume):
			OpenSettingsMenu(e)
			PlayUI(e, cfg.Audio.MenuSelectSound, 1)
		}
	}
}

// DrawSoundcheck prints the playback state.
func DrawSoundcheck(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Mono.Get()
	data := GetOrCreateSound(e)
	if data.Manager == nil {
		text.Draw(screen, "no sound manager", face, 8, 16, menuTextNormal)
		return
	}
	m := data.Manager

	lines := []string{
		fmt.Sprintf("BGM %q vol %.2f sessions %d", m.CurrentBGMKey(), m.CurrentBGMVolume(), m.BGM().ActiveSessions()),
		fmt.Sprintf("SE %d/%d  UI %d/%d playing", m.Playing(voice.SE), cfg.Audio.MaxSEChannels, m.Playing(voice.UI), cfg.Audio.MaxUIChannels),
	}
	for _, bus := range mixer.Buses {
		lines = append(lines, fmt.Sprintf("%-7s %.2f", bus, m.GetVolume(bus)))
	}
	lines = append(lines,
		"",
		"[B] crossfade  [P] play  [F] fade out  [S] stop",
		"[Space] effect  [U] ui  [Tab] volume menu",
	)
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*14, menuTextNormal)
	}
}
