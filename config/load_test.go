package config

import (
	"os"
	"path/filepath"
	"testing"
)

func restoreDefaults(t *testing.T) {
	audio, mixer := Audio, Mixer
	t.Cleanup(func() {
		Audio, Mixer = audio, mixer
	})
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "soundmux.yaml")
	body := "audio:\n  max_se_channels: 8\n  crossfade_loop: false\nmixer:\n  bgm_param: MusicVolume\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Audio.MaxSEChannels != 8 {
		t.Errorf("MaxSEChannels = %d, want 8", Audio.MaxSEChannels)
	}
	if Audio.CrossfadeLoop {
		t.Errorf("CrossfadeLoop should be false")
	}
	if Audio.MaxUIChannels != 5 {
		t.Errorf("MaxUIChannels = %d, want default 5", Audio.MaxUIChannels)
	}
	if Mixer.BGMParam != "MusicVolume" {
		t.Errorf("BGMParam = %q, want MusicVolume", Mixer.BGMParam)
	}
	if Mixer.MasterParam != "MasterVolume" {
		t.Errorf("MasterParam = %q, want default", Mixer.MasterParam)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	restoreDefaults(t)
	t.Setenv("SOUNDMUX_AUDIO_MAX_UI_CHANNELS", "3")

	if err := Load(""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Audio.MaxUIChannels != 3 {
		t.Errorf("MaxUIChannels = %d, want 3", Audio.MaxUIChannels)
	}
}

func TestLoadRejectsEmptyPools(t *testing.T) {
	restoreDefaults(t)
	t.Setenv("SOUNDMUX_AUDIO_MAX_SE_CHANNELS", "0")

	if err := Load(""); err == nil {
		t.Fatalf("expected error for zero SE channels")
	}
	if Audio.MaxSEChannels != 5 {
		t.Errorf("failed load must keep previous config, got %d", Audio.MaxSEChannels)
	}
}

func TestLoadMissingFile(t *testing.T) {
	restoreDefaults(t)
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestStepVolume(t *testing.T) {
	cases := []struct {
		name      string
		current   float64
		direction int
		want      float64
	}{
		{"up_from_half", 0.5, 1, 0.75},
		{"down_from_half", 0.5, -1, 0.25},
		{"clamp_top", 1.0, 1, 1.0},
		{"clamp_bottom", 0, -1, 0},
		{"snap_then_step", 0.3, 1, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StepVolume(c.current, c.direction); got != c.want {
				t.Fatalf("StepVolume(%v, %d) = %v, want %v", c.current, c.direction, got, c.want)
			}
		})
	}
}
