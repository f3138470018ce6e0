package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/soundmux/assets"
	"github.com/automoto/soundmux/components"
	cfg "github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/easing"
	"github.com/automoto/soundmux/mixer"
	"github.com/automoto/soundmux/sound"
	"github.com/automoto/soundmux/systems"
	"github.com/automoto/soundmux/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SoundcheckOptions wires the scene to its audio assets.
type SoundcheckOptions struct {
	Manager      *sound.Manager
	Loader       *assets.Loader
	FS           fs.FS
	ManifestPath string
	Level        string // optional .tmx path whose music starts on open
	Watcher      *assets.Watcher
}

// SoundcheckScene plays manifest sounds on key presses and hosts the volume menu
type SoundcheckScene struct {
	ecs      *ecs.ECS
	opts     SoundcheckOptions
	playlist *systems.Playlist
	mixerUI  *ui.MixerUI
	once     sync.Once
}

func NewSoundcheckScene(opts SoundcheckOptions) *SoundcheckScene {
	return &SoundcheckScene{
		opts:     opts,
		playlist: systems.NewPlaylist(opts.Loader.Manifest()),
	}
}

func (s *SoundcheckScene) Update() {
	s.once.Do(s.configure)
	s.pollReload()
	if !systems.GetOrCreateSettingsMenu(s.ecs).IsOpen {
		s.mixerUI.Update()
	}
	s.ecs.Update()
}

func (s *SoundcheckScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	if !systems.GetOrCreateSettingsMenu(s.ecs).IsOpen {
		s.mixerUI.UI.Draw(screen)
	}
}

// Close persists the volume menu's values.
func (s *SoundcheckScene) Close() error {
	if s.ecs == nil {
		return nil
	}
	return systems.SaveCurrentSettings(systems.GetOrCreateSettingsMenu(s.ecs))
}

func (s *SoundcheckScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	systems.AttachSound(s.ecs, s.opts.Manager)

	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.NewUpdateSoundcheck(s.playlist))
	s.ecs.AddSystem(systems.UpdateSettingsMenu)
	// Sound runs last so requests made this frame play this frame
	s.ecs.AddSystem(systems.UpdateSound)

	s.ecs.AddRenderer(cfg.Default, systems.DrawSoundcheck)
	s.ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)

	menu := systems.GetOrCreateSettingsMenu(s.ecs)
	systems.ApplySavedSettings(s.ecs, &menu.Setting)
	s.mixerUI = s.newMixerUI(menu)

	if s.opts.Level != "" {
		s.playLevel(s.opts.Level)
	}
}

func (s *SoundcheckScene) newMixerUI(menu *components.SettingsMenuData) *ui.MixerUI {
	mui := ui.NewMixerUI(menu)
	mui.OnStep = func(bus mixer.Bus, direction int) {
		systems.StepBusVolume(s.ecs, bus, direction)
	}
	mui.OnCrossfade = func() {
		if key, ok := s.playlist.NextTrack(); ok {
			systems.FadeToBGM(s.ecs, key, cfg.Audio.DefaultFadeSeconds, cfg.Audio.DefaultBGMVolume, easing.Linear)
		}
	}
	mui.OnStop = func() {
		systems.FadeOutBGM(s.ecs, cfg.Audio.DefaultFadeSeconds, easing.OutSine)
	}
	mui.NowPlaying = s.opts.Manager.CurrentBGMKey
	return mui
}

func (s *SoundcheckScene) playLevel(tmxPath string) {
	key, err := assets.LevelMusic(s.opts.FS, tmxPath, s.opts.Loader.Manifest())
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	systems.FadeInBGM(s.ecs, key, cfg.Audio.DefaultBGMVolume)
}

func (s *SoundcheckScene) pollReload() {
	if s.opts.Watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-s.opts.Watcher.Events:
			if !ok {
				s.opts.Watcher = nil
				return
			}
			s.reload(name)
		case err, ok := <-s.opts.Watcher.Errors:
			if !ok {
				s.opts.Watcher = nil
				return
			}
			log.Printf("Warning: asset watcher: %v", err)
		default:
			return
		}
	}
}

func (s *SoundcheckScene) reload(changed string) {
	m, err := assets.LoadManifest(s.opts.FS, s.opts.ManifestPath)
	if err != nil {
		log.Printf("Warning: Could not reload manifest after %s changed: %v", changed, err)
		return
	}
	s.opts.Loader.Reload(m)
	s.playlist.Reset(m)
	log.Printf("reloaded %s (%d sounds)", s.opts.ManifestPath, len(m.Sounds))
}
