package components

import (
	"github.com/automoto/soundmux/easing"
	"github.com/automoto/soundmux/sound"
	"github.com/yohamta/donburi"
)

type SoundOp int

const (
	OpPlayEffect SoundOp = iota
	OpPlayUI
	OpPlayBGM
	OpFadeInBGM
	OpFadeToBGM
	OpFadeOutBGM
	OpStopBGM
)

// SoundRequest is one queued call into the sound manager.
type SoundRequest struct {
	Op       SoundOp
	Key      string
	Volume   float64
	Duration float64 // seconds
	Easing   easing.Kind
	Loop     bool
}

// SoundData stores the sound manager and requests made this frame (singleton component)
type SoundData struct {
	Manager *sound.Manager
	Pending []SoundRequest
}

var Sound = donburi.NewComponentType[SoundData]()
