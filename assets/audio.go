package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"

	"github.com/automoto/soundmux/sound"
	"github.com/automoto/soundmux/voice"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

type decodeFunc func(sampleRate int, data []byte) (io.Reader, error)

var decoders = map[string]decodeFunc{
	".ogg": func(sampleRate int, data []byte) (io.Reader, error) {
		return vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	},
	".wav": func(sampleRate int, data []byte) (io.Reader, error) {
		return wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	},
}

// Loader resolves clip keys through a manifest and caches decoded PCM
// per file path.
type Loader struct {
	mu         sync.Mutex
	fsys       fs.FS
	sampleRate int
	manifest   *Manifest
	cache      map[string][]byte
}

func NewLoader(fsys fs.FS, sampleRate int, m *Manifest) *Loader {
	if m == nil {
		m = &Manifest{Sounds: map[string]string{}}
	}
	return &Loader{
		fsys:       fsys,
		sampleRate: sampleRate,
		manifest:   m,
		cache:      make(map[string][]byte),
	}
}

// Manifest returns the manifest currently in use.
func (l *Loader) Manifest() *Manifest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.manifest
}

// Resolve decodes the file registered for key.
func (l *Loader) Resolve(key string) (voice.Clip, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.manifest.Sounds[key]
	if !ok {
		return voice.Clip{}, fmt.Errorf("%w: %s", sound.ErrClipNotFound, key)
	}
	pcm, err := l.decodeLocked(p)
	if err != nil {
		return voice.Clip{}, err
	}
	return voice.Clip{Key: key, PCM: pcm, Gain: l.manifest.Gain[key]}, nil
}

// Preload decodes every sound in the manifest so the first play does not
// stall. It keeps going past broken files and returns the first error.
func (l *Loader) Preload() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var first error
	for key, p := range l.manifest.Sounds {
		if _, err := l.decodeLocked(p); err != nil {
			log.Printf("Warning: Could not preload sound %q: %v", key, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Reload swaps in a new manifest and drops every cached decode.
func (l *Loader) Reload(m *Manifest) {
	if m == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.manifest = m
	l.cache = make(map[string][]byte)
}

// Cached reports whether the file at p has been decoded.
func (l *Loader) Cached(p string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.cache[p]
	return ok
}

func (l *Loader) decodeLocked(p string) ([]byte, error) {
	if pcm, ok := l.cache[p]; ok {
		return pcm, nil
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	stream, err := decode(l.sampleRate, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}

	l.cache[p] = pcm
	return pcm, nil
}
