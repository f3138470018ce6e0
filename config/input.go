package config

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionOpenVolume
	ActionCrossfade
	ActionPlayBGM
	ActionFadeOutBGM
	ActionStopBGM
	ActionPlayEffect
	ActionPlayUI
	ActionCount // Must be last - used for array sizing
)
