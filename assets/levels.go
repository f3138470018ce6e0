package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LevelMusic returns the BGM key for the Tiled map at tmxPath. The map's
// "bgm" property wins; otherwise the manifest's levels table is consulted
// by file stem.
func LevelMusic(fsys fs.FS, tmxPath string, m *Manifest) (string, error) {
	stem := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		if m != nil {
			if key, ok := m.LevelBGM(stem); ok {
				return key, nil
			}
		}
		return "", fmt.Errorf("failed to load level %s: %w", tmxPath, err)
	}

	if key := levelMap.Properties.GetString("bgm"); key != "" {
		return key, nil
	}
	if m != nil {
		if key, ok := m.LevelBGM(stem); ok {
			return key, nil
		}
	}
	return "", fmt.Errorf("no music for level %s", stem)
}
