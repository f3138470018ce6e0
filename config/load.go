package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. SOUNDMUX_AUDIO_MAX_SE_CHANNELS.
const EnvPrefix = "SOUNDMUX"

// Load overlays Audio and Mixer with values from the config file at path (any
// format viper understands) and SOUNDMUX_* environment variables. An empty path
// applies environment overrides only. On error the current values are kept.
func Load(path string) error {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	audio := AudioConfig{
		SampleRate:         v.GetInt("audio.sample_rate"),
		MaxSEChannels:      v.GetInt("audio.max_se_channels"),
		MaxUIChannels:      v.GetInt("audio.max_ui_channels"),
		DefaultBGMVolume:   v.GetFloat64("audio.default_bgm_volume"),
		DefaultFadeSeconds: v.GetFloat64("audio.default_fade_seconds"),
		DefaultEasing:      v.GetString("audio.default_easing"),
		CrossfadeLoop:      v.GetBool("audio.crossfade_loop"),
		ManifestPath:       v.GetString("audio.manifest_path"),
		AppName:            v.GetString("audio.app_name"),
		SettingsItem:       v.GetString("audio.settings_item"),
		MenuMoveSound:      v.GetString("audio.menu_move_sound"),
		MenuSelectSound:    v.GetString("audio.menu_select_sound"),
	}
	if err := validateAudio(audio); err != nil {
		return err
	}

	Audio = audio
	Mixer = MixerConfig{
		MasterGroup: v.GetString("mixer.master_group"),
		BGMGroup:    v.GetString("mixer.bgm_group"),
		SEGroup:     v.GetString("mixer.se_group"),
		UIGroup:     v.GetString("mixer.ui_group"),
		MasterParam: v.GetString("mixer.master_param"),
		BGMParam:    v.GetString("mixer.bgm_param"),
		SEParam:     v.GetString("mixer.se_param"),
		UIParam:     v.GetString("mixer.ui_param"),
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("audio.sample_rate", Audio.SampleRate)
	v.SetDefault("audio.max_se_channels", Audio.MaxSEChannels)
	v.SetDefault("audio.max_ui_channels", Audio.MaxUIChannels)
	v.SetDefault("audio.default_bgm_volume", Audio.DefaultBGMVolume)
	v.SetDefault("audio.default_fade_seconds", Audio.DefaultFadeSeconds)
	v.SetDefault("audio.default_easing", Audio.DefaultEasing)
	v.SetDefault("audio.crossfade_loop", Audio.CrossfadeLoop)
	v.SetDefault("audio.manifest_path", Audio.ManifestPath)
	v.SetDefault("audio.app_name", Audio.AppName)
	v.SetDefault("audio.settings_item", Audio.SettingsItem)
	v.SetDefault("audio.menu_move_sound", Audio.MenuMoveSound)
	v.SetDefault("audio.menu_select_sound", Audio.MenuSelectSound)

	v.SetDefault("mixer.master_group", Mixer.MasterGroup)
	v.SetDefault("mixer.bgm_group", Mixer.BGMGroup)
	v.SetDefault("mixer.se_group", Mixer.SEGroup)
	v.SetDefault("mixer.ui_group", Mixer.UIGroup)
	v.SetDefault("mixer.master_param", Mixer.MasterParam)
	v.SetDefault("mixer.bgm_param", Mixer.BGMParam)
	v.SetDefault("mixer.se_param", Mixer.SEParam)
	v.SetDefault("mixer.ui_param", Mixer.UIParam)
	return v
}

func validateAudio(a AudioConfig) error {
	switch {
	case a.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate must be positive, got %d", a.SampleRate)
	case a.MaxSEChannels <= 0:
		return fmt.Errorf("audio.max_se_channels must be positive, got %d", a.MaxSEChannels)
	case a.MaxUIChannels <= 0:
		return fmt.Errorf("audio.max_ui_channels must be positive, got %d", a.MaxUIChannels)
	case a.DefaultFadeSeconds <= 0:
		return fmt.Errorf("audio.default_fade_seconds must be positive, got %v", a.DefaultFadeSeconds)
	}
	return nil
}
