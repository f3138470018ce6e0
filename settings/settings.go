// Package settings persists the user's volume choices.
package settings

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/mixer"
	"github.com/quasilyte/gdata"
)

// GameSetting holds the user-facing volume settings, each in [0, 1].
type GameSetting struct {
	MasterVolume float64 `json:"masterVolume"`
	BGMVolume    float64 `json:"bgmVolume"`
	SFXVolume    float64 `json:"sfxVolume"`
	UIVolume     float64 `json:"uiVolume"`
}

// Default returns full volume on every bus.
func Default() *GameSetting {
	return &GameSetting{
		MasterVolume: 1.0,
		BGMVolume:    1.0,
		SFXVolume:    1.0,
		UIVolume:     1.0,
	}
}

func (s *GameSetting) field(bus mixer.Bus) *float64 {
	switch bus {
	case mixer.BGM:
		return &s.BGMVolume
	case mixer.SFX:
		return &s.SFXVolume
	case mixer.UI:
		return &s.UIVolume
	}
	return &s.MasterVolume
}

func (s *GameSetting) Volume(bus mixer.Bus) float64 {
	return *s.field(bus)
}

// SetVolume stores v clamped to [0, 1].
func (s *GameSetting) SetVolume(bus mixer.Bus, v float64) {
	*s.field(bus) = clamp01(v)
}

// VolumeSetter receives bus volumes, e.g. the sound manager.
type VolumeSetter interface {
	SetVolume(bus mixer.Bus, ratio float64)
}

// Apply pushes every bus volume to dst.
func (s *GameSetting) Apply(dst VolumeSetter) {
	for _, bus := range mixer.Buses {
		dst.SetVolume(bus, s.Volume(bus))
	}
}

// ToSlider converts a volume to the option screen's slider scale.
func ToSlider(v float64) float64 {
	return v * config.SettingsMenu.SliderMax
}

// FromSlider converts a slider position back to a volume.
func FromSlider(v float64) float64 {
	return clamp01(v / config.SettingsMenu.SliderMax)
}

func clamp01(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Store saves and loads named blobs.
type Store interface {
	LoadItem(name string) ([]byte, error)
	SaveItem(name string, data []byte) error
}

// OpenStore opens the per-user gdata storage for appName.
func OpenStore(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return m, nil
}

// MemoryStore keeps items in memory.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (m *MemoryStore) LoadItem(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[name]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryStore) SaveItem(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[name] = append([]byte(nil), data...)
	return nil
}

// Load reads the setting saved as name. When nothing is saved yet the
// defaults are written back and returned. Unreadable data yields defaults
// together with the error.
func Load(store Store, name string) (*GameSetting, error) {
	data, err := store.LoadItem(name)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return Default(), err
	}
	if len(data) == 0 {
		s := Default()
		if err := Save(store, name, s); err != nil {
			return s, err
		}
		return s, nil
	}

	s := Default()
	if err := json.Unmarshal(data, s); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return Default(), fmt.Errorf("parse settings %s: %w", name, err)
	}
	for _, bus := range mixer.Buses {
		s.SetVolume(bus, s.Volume(bus))
	}
	return s, nil
}

// Save writes s as JSON under name.
func Save(store Store, name string, s *GameSetting) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(name, data); err != nil {
		return fmt.Errorf("save settings %s: %w", name, err)
	}
	return nil
}
