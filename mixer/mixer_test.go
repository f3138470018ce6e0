package mixer

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/soundmux/config"
)

func loadedFacade() (*Facade, *Bank) {
	f := NewFacade(config.Mixer)
	b := NewBank(config.Mixer)
	f.Load(b)
	return f, b
}

func TestVolumeRoundTrip(t *testing.T) {
	f, _ := loadedFacade()
	ratios := []float64{MinRatio, 0.001, 0.05, 0.25, 0.5, 0.75, 0.999, 1}
	for _, bus := range Buses {
		for _, r := range ratios {
			f.SetVolume(bus, r)
			if got := f.GetVolume(bus); math.Abs(got-r) > 1e-9 {
				t.Errorf("%s: GetVolume after SetVolume(%v) = %v", bus, r, got)
			}
		}
	}
}

func TestSetVolumeClamps(t *testing.T) {
	cases := []struct {
		name   string
		ratio  float64
		wantDB float64
	}{
		{"zero_floors_at_minus_80", 0, -80},
		{"negative", -3, -80},
		{"nan", math.NaN(), -80},
		{"above_one", 4, 0},
		{"unity", 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, b := loadedFacade()
			f.SetVolume(SFX, c.ratio)
			db, ok := b.GetFloat(config.Mixer.SEParam)
			if !ok || math.Abs(db-c.wantDB) > 1e-9 {
				t.Fatalf("dB = %v (ok=%v), want %v", db, ok, c.wantDB)
			}
		})
	}
}

func TestUnloadedFacadeIsHarmless(t *testing.T) {
	f := NewFacade(config.Mixer)
	f.Load(nil)
	f.SetVolume(Master, 0.5)
	if f.Loaded() {
		t.Fatalf("nil backend must not count as loaded")
	}
	if got := f.GetVolume(Master); got != 0 {
		t.Fatalf("GetVolume without mixer = %v, want 0", got)
	}
	if _, ok := f.Group(BGM); ok {
		t.Fatalf("no groups without mixer")
	}
}

func TestParamTable(t *testing.T) {
	f := NewFacade(config.Mixer)
	cases := map[Bus]string{
		Master:  "MasterVolume",
		BGM:     "BgmVolume",
		SFX:     "EffectVolume",
		UI:      "UiVolume",
		Bus(17): "MasterVolume",
		Bus(-1): "MasterVolume",
	}
	for bus, want := range cases {
		if got := f.Param(bus); got != want {
			t.Errorf("Param(%v) = %q, want %q", bus, got, want)
		}
	}
}

func TestGroupGainFollowsHierarchy(t *testing.T) {
	f, _ := loadedFacade()
	g, ok := f.Group(BGM)
	if !ok || g.Name() != "BGM" {
		t.Fatalf("BGM group not found")
	}
	if math.Abs(g.Gain()-1) > 1e-12 {
		t.Fatalf("default gain = %v, want 1", g.Gain())
	}

	f.SetVolume(Master, 0.5)
	f.SetVolume(BGM, 0.5)
	if math.Abs(g.Gain()-0.25) > 1e-9 {
		t.Fatalf("gain = %v, want 0.25", g.Gain())
	}

	ui, _ := f.Group(UI)
	if math.Abs(ui.Gain()-0.5) > 1e-9 {
		t.Fatalf("UI gain = %v, want master only 0.5", ui.Gain())
	}
}

func TestParseBus(t *testing.T) {
	for _, b := range Buses {
		got, err := ParseBus(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBus(%q) = %v, %v", b.String(), got, err)
		}
	}
	if got, _ := ParseBus("sfx"); got != SFX {
		t.Errorf("ParseBus should ignore case")
	}
	if _, err := ParseBus("voice"); !errors.Is(err, ErrUnknownBus) {
		t.Errorf("expected error for unknown bus")
	}
}
