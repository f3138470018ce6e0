package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	MaxSEChannels int
	MaxUIChannels int

	DefaultBGMVolume   float64
	DefaultFadeSeconds float64
	DefaultEasing      string // linear, in_sine, out_sine

	// CrossfadeLoop decides whether a track started by FadeTo loops.
	// FadeIn always loops.
	CrossfadeLoop bool

	ManifestPath string
	AppName      string // gdata application name for persisted settings
	SettingsItem string

	// UI clips played by the volume menu
	MenuMoveSound   string
	MenuSelectSound string
}

// MixerConfig names the mixer groups and their exposed volume parameters
type MixerConfig struct {
	MasterGroup string
	BGMGroup    string
	SEGroup     string
	UIGroup     string

	MasterParam string
	BGMParam    string
	SEParam     string
	UIParam     string
}

var Audio AudioConfig
var Mixer MixerConfig

func init() {
	Audio = AudioConfig{
		SampleRate:         44100,
		MaxSEChannels:      5,
		MaxUIChannels:      5,
		DefaultBGMVolume:   1.0,
		DefaultFadeSeconds: 1.0,
		DefaultEasing:      "linear",
		CrossfadeLoop:      true,
		ManifestPath:       "audio/manifest.yaml",
		AppName:            "soundmux",
		SettingsItem:       "game_setting",
		MenuMoveSound:      "ui_move",
		MenuSelectSound:    "ui_select",
	}

	Mixer = MixerConfig{
		MasterGroup: "Master",
		BGMGroup:    "BGM",
		SEGroup:     "Effect",
		UIGroup:     "UI",
		MasterParam: "MasterVolume",
		BGMParam:    "BgmVolume",
		SEParam:     "EffectVolume",
		UIParam:     "UiVolume",
	}
}
