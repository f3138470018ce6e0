// Package mixer exposes named volume buses as linear ratios on top of a
// decibel parameter store.
package mixer

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/automoto/soundmux/config"
)

// MinRatio keeps log10 away from zero; 20*log10(0.0001) is -80 dB.
const MinRatio = 0.0001

// ErrUnknownBus is returned by ParseBus for names outside Buses.
var ErrUnknownBus = errors.New("unknown volume bus")

// Bus is a logical volume control
type Bus int

const (
	Master Bus = iota
	BGM
	SFX
	UI
	busCount
)

// Buses lists every bus in declaration order.
var Buses = []Bus{Master, BGM, SFX, UI}

func (b Bus) String() string {
	switch b {
	case Master:
		return "Master"
	case BGM:
		return "BGM"
	case SFX:
		return "SFX"
	case UI:
		return "UI"
	}
	return fmt.Sprintf("Bus(%d)", int(b))
}

// ParseBus resolves a bus by name, ignoring case.
func ParseBus(name string) (Bus, error) {
	for _, b := range Buses {
		if strings.EqualFold(b.String(), strings.TrimSpace(name)) {
			return b, nil
		}
	}
	return Master, fmt.Errorf("%w %q", ErrUnknownBus, name)
}

// Group is a routing target on the backend.
type Group interface {
	Name() string
	Gain() float64
}

// Backend stores float parameters by name and resolves routing groups.
type Backend interface {
	SetFloat(name string, value float64) bool
	GetFloat(name string) (float64, bool)
	FindGroup(name string) (Group, bool)
}

// ToDecibel converts a linear ratio in (0,1] to dB.
func ToDecibel(ratio float64) float64 {
	return 20 * math.Log10(ratio)
}

// FromDecibel converts dB back to a linear ratio.
func FromDecibel(db float64) float64 {
	return math.Pow(10, db/20)
}

// Facade maps buses onto backend parameters. Until a backend is loaded,
// writes are dropped and reads return 0.
type Facade struct {
	backend Backend
	params  [busCount]string
	groups  [busCount]string
}

func NewFacade(cfg config.MixerConfig) *Facade {
	return &Facade{
		params: [busCount]string{
			Master: cfg.MasterParam,
			BGM:    cfg.BGMParam,
			SFX:    cfg.SEParam,
			UI:     cfg.UIParam,
		},
		groups: [busCount]string{
			Master: cfg.MasterGroup,
			BGM:    cfg.BGMGroup,
			SFX:    cfg.SEGroup,
			UI:     cfg.UIGroup,
		},
	}
}

// Load attaches the backend once it is available.
func (f *Facade) Load(b Backend) {
	if b == nil {
		log.Printf("Warning: mixer backend not available, volume changes are ignored")
		return
	}
	f.backend = b
}

func (f *Facade) Loaded() bool {
	return f.backend != nil
}

// Param returns the backend parameter for bus. Unknown buses use Master's.
func (f *Facade) Param(bus Bus) string {
	if bus < 0 || bus >= busCount {
		return f.params[Master]
	}
	return f.params[bus]
}

// Group looks up the routing group for bus on the loaded backend.
func (f *Facade) Group(bus Bus) (Group, bool) {
	if f.backend == nil {
		return nil, false
	}
	name := f.groups[Master]
	if bus >= 0 && bus < busCount {
		name = f.groups[bus]
	}
	return f.backend.FindGroup(name)
}

// SetVolume writes ratio, clamped to [MinRatio, 1], as decibels.
func (f *Facade) SetVolume(bus Bus, ratio float64) {
	if f.backend == nil {
		return
	}
	if math.IsNaN(ratio) || ratio < MinRatio {
		ratio = MinRatio
	}
	if ratio > 1 {
		ratio = 1
	}
	if !f.backend.SetFloat(f.Param(bus), ToDecibel(ratio)) {
		log.Printf("Warning: mixer has no parameter %q for %s", f.Param(bus), bus)
	}
}

// GetVolume reads the bus back as a linear ratio.
func (f *Facade) GetVolume(bus Bus) float64 {
	if f.backend == nil {
		return 0
	}
	db, ok := f.backend.GetFloat(f.Param(bus))
	if !ok {
		return 0
	}
	return FromDecibel(db)
}
