package components

import (
	"github.com/automoto/soundmux/settings"
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the volume menu
type SettingsMenuOption int

const (
	SettingsOptMasterVolume SettingsMenuOption = iota
	SettingsOptBGMVolume
	SettingsOptSFXVolume
	SettingsOptUIVolume
	SettingsOptMute
	SettingsOptBack
)

// SettingsMenuData stores the current state of the volume menu overlay
type SettingsMenuData struct {
	IsOpen         bool
	SelectedOption SettingsMenuOption

	// Values shown in the menu and persisted on close
	Setting settings.GameSetting
	Muted   bool
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
