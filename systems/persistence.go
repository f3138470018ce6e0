package systems

import (
	"log"

	"github.com/automoto/soundmux/components"
	cfg "github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/settings"
	"github.com/yohamta/donburi/ecs"
)

var settingsStore settings.Store

// InitPersistence opens the gdata store for settings storage
func InitPersistence() error {
	store, err := settings.OpenStore(cfg.Audio.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	settingsStore = store
	return nil
}

// UsePersistence replaces the settings store, e.g. with a settings.MemoryStore.
func UsePersistence(store settings.Store) {
	settingsStore = store
}

// LoadSettings loads settings from disk. Without a store, or when the saved
// data is unusable, the defaults are returned.
func LoadSettings() *settings.GameSetting {
	if settingsStore == nil {
		return settings.Default()
	}
	s, _ := settings.Load(settingsStore, cfg.Audio.SettingsItem)
	return s
}

// SaveCurrentSettings saves the values held by the volume menu. Without a
// store there is nothing to do.
func SaveCurrentSettings(s *components.SettingsMenuData) error {
	if settingsStore == nil {
		return nil
	}
	saved := s.Setting
	if err := settings.Save(settingsStore, cfg.Audio.SettingsItem, &saved); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings pushes saved volumes to the sound manager and the menu
func ApplySavedSettings(e *ecs.ECS, saved *settings.GameSetting) {
	if saved == nil {
		return
	}

	if data := GetOrCreateSound(e); data.Manager != nil {
		data.Manager.LoadSetting(saved)
	}

	if entry, ok := components.SettingsMenu.First(e.World); ok {
		menu := components.SettingsMenu.Get(entry)
		menu.Setting = *saved
		menu.Muted = false
	}
}
