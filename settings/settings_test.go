package settings

import (
	"errors"
	"testing"

	"github.com/automoto/soundmux/mixer"
)

type recorder map[mixer.Bus]float64

func (r recorder) SetVolume(bus mixer.Bus, ratio float64) { r[bus] = ratio }

type failingStore struct{}

func (failingStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) SaveItem(string, []byte) error { return errors.New("disk gone") }

func TestLoadMissingWritesDefaults(t *testing.T) {
	store := NewMemoryStore()
	s, err := Load(store, "game_setting")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *s != *Default() {
		t.Fatalf("got %+v, want defaults", s)
	}
	data, _ := store.LoadItem("game_setting")
	if len(data) == 0 {
		t.Fatalf("defaults should be saved back")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	s := Default()
	s.SetVolume(mixer.BGM, 0.3)
	s.SetVolume(mixer.UI, 0.6)
	if err := Save(store, "game_setting", s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(store, "game_setting")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *s {
		t.Fatalf("got %+v, want %+v", got, s)
	}
}

func TestLoadCorruptReturnsDefaults(t *testing.T) {
	store := NewMemoryStore()
	_ = store.SaveItem("game_setting", []byte("{not json"))
	s, err := Load(store, "game_setting")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if *s != *Default() {
		t.Fatalf("corrupt data should fall back to defaults")
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	store := NewMemoryStore()
	_ = store.SaveItem("s", []byte(`{"masterVolume": 3, "sfxVolume": -1}`))
	s, err := Load(store, "s")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MasterVolume != 1 || s.SFXVolume != 0 || s.BGMVolume != 1 {
		t.Fatalf("got %+v", s)
	}
}

func TestLoadStoreFailure(t *testing.T) {
	s, err := Load(failingStore{}, "s")
	if err == nil || s == nil {
		t.Fatalf("expected defaults and an error, got %v %v", s, err)
	}
}

func TestApplyPushesEveryBus(t *testing.T) {
	s := &GameSetting{MasterVolume: 0.9, BGMVolume: 0.8, SFXVolume: 0.7, UIVolume: 0.6}
	r := recorder{}
	s.Apply(r)
	want := recorder{mixer.Master: 0.9, mixer.BGM: 0.8, mixer.SFX: 0.7, mixer.UI: 0.6}
	for bus, v := range want {
		if r[bus] != v {
			t.Errorf("%s = %v, want %v", bus, r[bus], v)
		}
	}
}

func TestSliderConversion(t *testing.T) {
	if got := ToSlider(0.25); got != 25 {
		t.Errorf("ToSlider(0.25) = %v", got)
	}
	if got := FromSlider(50); got != 0.5 {
		t.Errorf("FromSlider(50) = %v", got)
	}
	if got := FromSlider(250); got != 1 {
		t.Errorf("FromSlider should clamp, got %v", got)
	}
}
