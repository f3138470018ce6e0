package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Mono    FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	mu          sync.Mutex
	fonts       = map[FontName]font.Face{}
	defaultOnce sync.Once
)

// LoadDefaults registers the Go fonts under Regular, Title and Mono.
func LoadDefaults() {
	defaultOnce.Do(func() {
		must(LoadFontWithSize(Regular, goregular.TTF, 12))
		must(LoadFontWithSize(Title, goregular.TTF, 20))
		must(LoadFontWithSize(Mono, gomono.TTF, 11))
	})
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	mu.Unlock()
	return nil
}

func getFont(name FontName) font.Face {
	LoadDefaults()
	mu.Lock()
	f, ok := fonts[name]
	mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
