package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/soundmux/components"
	cfg "github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/fonts"
	"github.com/automoto/soundmux/mixer"
	"github.com/automoto/soundmux/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

var (
	menuBackground   = color.RGBA{R: 10, G: 10, B: 20, A: 220}
	menuTitleColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	menuTextNormal   = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	menuTextSelected = color.RGBA{R: 255, G: 220, B: 80, A: 255}
)

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component for this ECS, creating it if needed
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(entry, components.SettingsMenuData{
			Setting: *LoadSettings(),
		})
	}
	return components.SettingsMenu.Get(entry)
}

// OpenSettingsMenu shows the volume menu
func OpenSettingsMenu(e *ecs.ECS) {
	s := GetOrCreateSettingsMenu(e)
	s.IsOpen = true
	s.SelectedOption = components.SettingsOptMasterVolume
}

// menuActions are checked in this order each frame.
var menuActions = []cfg.ActionID{
	cfg.ActionMenuUp,
	cfg.ActionMenuDown,
	cfg.ActionMenuLeft,
	cfg.ActionMenuRight,
	cfg.ActionMenuSelect,
	cfg.ActionMenuBack,
}

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	if !GetOrCreateSettingsMenu(e).IsOpen {
		return
	}
	input := getOrCreateInput(e)
	for _, action := range menuActions {
		if GetAction(input, action).JustPressed {
			HandleMenuAction(e, action)
		}
	}
}

// HandleMenuAction applies one menu action to the open volume menu.
func HandleMenuAction(e *ecs.ECS, action cfg.ActionID) {
	s := GetOrCreateSettingsMenu(e)
	if !s.IsOpen {
		return
	}

	switch action {
	case cfg.ActionMenuUp:
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		PlayUI(e, cfg.Audio.MenuMoveSound, 1)
	case cfg.ActionMenuDown:
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + 1) % numSettingsOptions,
		)
		PlayUI(e, cfg.Audio.MenuMoveSound, 1)
	case cfg.ActionMenuLeft:
		adjustValue(e, s, -1)
	case cfg.ActionMenuRight:
		adjustValue(e, s, +1)
	case cfg.ActionMenuSelect:
		handleSelect(e, s)
	case cfg.ActionMenuBack:
		closeSettings(e, s)
	}
}

func optionBus(opt components.SettingsMenuOption) (mixer.Bus, bool) {
	switch opt {
	case components.SettingsOptMasterVolume:
		return mixer.Master, true
	case components.SettingsOptBGMVolume:
		return mixer.BGM, true
	case components.SettingsOptSFXVolume:
		return mixer.SFX, true
	case components.SettingsOptUIVolume:
		return mixer.UI, true
	}
	return 0, false
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	if bus, ok := optionBus(s.SelectedOption); ok {
		StepBusVolume(e, bus, direction)
		return
	}
	if s.SelectedOption == components.SettingsOptMute {
		toggleMute(e, s)
		PlayUI(e, cfg.Audio.MenuSelectSound, 1)
	}
}

// StepBusVolume moves bus one volume step up or down and plays a preview.
func StepBusVolume(e *ecs.ECS, bus mixer.Bus, direction int) {
	s := GetOrCreateSettingsMenu(e)
	s.Setting.SetVolume(bus, cfg.StepVolume(s.Setting.Volume(bus), direction))
	if !s.Muted {
		setBusVolume(e, bus, s.Setting.Volume(bus))
	}
	if bus == mixer.SFX {
		PlayEffect(e, cfg.Audio.MenuSelectSound, 1)
	} else {
		PlayUI(e, cfg.Audio.MenuMoveSound, 1)
	}
}

// toggleMute silences the master bus without touching the saved volumes
func toggleMute(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		setBusVolume(e, mixer.Master, 0)
		return
	}
	setBusVolume(e, mixer.Master, s.Setting.MasterVolume)
}

func setBusVolume(e *ecs.ECS, bus mixer.Bus, ratio float64) {
	if data := GetOrCreateSound(e); data.Manager != nil {
		data.Manager.SetVolume(bus, ratio)
	}
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(e, s)
		PlayUI(e, cfg.Audio.MenuSelectSound, 1)
	case components.SettingsOptBack:
		closeSettings(e, s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlayUI(e, cfg.Audio.MenuSelectSound, 1)
	// failures are logged by SaveCurrentSettings; the menu closes either way
	_ = SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the volume overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	s := GetOrCreateSettingsMenu(e)
	if !s.IsOpen {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, width, height, menuBackground, false)

	text.Draw(screen, "VOLUME", fonts.Title.Get(), 20, 36, menuTitleColor)
	face := fonts.Mono.Get()
	for opt := components.SettingsOptMasterVolume; opt <= components.SettingsOptBack; opt++ {
		textColor := menuTextNormal
		if opt == s.SelectedOption {
			textColor = menuTextSelected
		}
		text.Draw(screen, optionLabel(s, opt), face, 28, 70+int(opt)*20, textColor)
	}
}

func optionLabel(s *components.SettingsMenuData, opt components.SettingsMenuOption) string {
	if bus, ok := optionBus(opt); ok {
		return fmt.Sprintf("%-8s %3.0f", bus, settings.ToSlider(s.Setting.Volume(bus)))
	}
	if opt == components.SettingsOptMute {
		if s.Muted {
			return "Mute     ON"
		}
		return "Mute     OFF"
	}
	return "Back"
}
