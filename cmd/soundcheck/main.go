package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/soundmux/assets"
	"github.com/automoto/soundmux/backend"
	"github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/mixer"
	"github.com/automoto/soundmux/scenes"
	"github.com/automoto/soundmux/sound"
	"github.com/automoto/soundmux/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

const (
	screenWidth  = 480
	screenHeight = 270
)

type Game struct {
	scene *scenes.SoundcheckScene
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		_ = g.scene.Close()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := pflag.StringP("config", "c", "", "config file (yaml, toml or json)")
	assetDir := pflag.StringP("assets", "a", "assets", "directory holding the manifest and audio files")
	level := pflag.StringP("level", "l", "", "Tiled map (relative to --assets) whose music plays on start")
	watch := pflag.BoolP("watch", "w", true, "reload the manifest when asset files change")
	pflag.Parse()

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fsys := os.DirFS(*assetDir)
	manifest, err := assets.LoadManifest(fsys, config.Audio.ManifestPath)
	if err != nil {
		log.Fatalf("Failed to load manifest: %v", err)
	}
	loader := assets.NewLoader(fsys, config.Audio.SampleRate, manifest)
	if err := loader.Preload(); err != nil {
		log.Printf("Warning: some sounds failed to preload: %v", err)
	}

	ctx := backend.SharedContext(config.Audio.SampleRate)
	manager, err := sound.New(config.Audio, loader, backend.NewFactory(ctx))
	if err != nil {
		log.Fatalf("Failed to create sound manager: %v", err)
	}
	manager.AttachMixer(mixer.NewBank(config.Mixer))

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: settings will not be saved: %v", err)
	}

	var watcher *assets.Watcher
	if *watch {
		var dirs []string
		for _, d := range manifest.WatchDirs(config.Audio.ManifestPath, *level) {
			dirs = append(dirs, filepath.Join(*assetDir, filepath.FromSlash(d)))
		}
		watcher, err = assets.NewWatcher(dirs...)
		if err != nil {
			log.Printf("Warning: hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	scene := scenes.NewSoundcheckScene(scenes.SoundcheckOptions{
		Manager:      manager,
		Loader:       loader,
		FS:           fsys,
		ManifestPath: config.Audio.ManifestPath,
		Level:        *level,
		Watcher:      watcher,
	})

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("soundcheck")
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	manager.StopAll()
}
