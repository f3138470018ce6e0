package assets

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest maps clip keys to audio files.
type Manifest struct {
	Sounds map[string]string  `yaml:"sounds"`
	Gain   map[string]float64 `yaml:"gain"`
	Levels map[string]string  `yaml:"levels"`
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: unmarshal manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	if m.Sounds == nil {
		m.Sounds = map[string]string{}
	}
	return &m, nil
}

func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	for key, p := range m.Sounds {
		if p == "" {
			return fmt.Errorf("assets: sound %q has no path", key)
		}
		if _, ok := decoders[strings.ToLower(path.Ext(p))]; !ok {
			return fmt.Errorf("assets: sound %q: unsupported audio format %q", key, path.Ext(p))
		}
	}
	for key, g := range m.Gain {
		if _, ok := m.Sounds[key]; !ok {
			return fmt.Errorf("assets: gain for unknown sound %q", key)
		}
		if g < 0 || g != g {
			return fmt.Errorf("assets: gain for %q must be >= 0, got %v", key, g)
		}
	}
	for level, key := range m.Levels {
		if _, ok := m.Sounds[key]; !ok {
			return fmt.Errorf("assets: level %q uses unknown sound %q", level, key)
		}
	}
	return nil
}

// LevelBGM returns the BGM key registered for level.
func (m *Manifest) LevelBGM(level string) (string, bool) {
	key, ok := m.Levels[level]
	return key, ok
}

// WatchDirs lists the directories, relative to the asset root, that hold the
// manifest at manifestPath, its sound files and the extra files given
// (e.g. a level map). Each directory appears once, sorted.
func (m *Manifest) WatchDirs(manifestPath string, extra ...string) []string {
	seen := map[string]bool{path.Dir(manifestPath): true}
	for _, p := range m.Sounds {
		seen[path.Dir(p)] = true
	}
	for _, p := range extra {
		if p != "" {
			seen[path.Dir(p)] = true
		}
	}
	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}
