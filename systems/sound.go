package systems

import (
	"log"

	"github.com/automoto/soundmux/components"
	cfg "github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/easing"
	"github.com/automoto/soundmux/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// AttachSound stores m in the world's sound singleton, creating it if needed.
func AttachSound(e *ecs.ECS, m *sound.Manager) *components.SoundData {
	data := GetOrCreateSound(e)
	data.Manager = m
	return data
}

// GetOrCreateSound returns the singleton Sound component for this ECS, creating it if needed
func GetOrCreateSound(e *ecs.ECS) *components.SoundData {
	entry, ok := components.Sound.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Sound))
		components.Sound.SetValue(entry, components.SoundData{
			Pending: make([]components.SoundRequest, 0, 8),
		})
	}
	return components.Sound.Get(entry)
}

// UpdateSound runs queued requests and advances fades by one frame.
func UpdateSound(e *ecs.ECS) {
	updateSound(e, 1/float64(ebiten.TPS()))
}

func updateSound(e *ecs.ECS, dt float64) {
	entry, ok := components.Sound.First(e.World)
	if !ok {
		return
	}
	data := components.Sound.Get(entry)
	if data.Manager == nil {
		data.Pending = data.Pending[:0]
		return
	}

	for _, req := range data.Pending {
		if err := dispatch(data.Manager, req); err != nil {
			log.Printf("Warning: sound request %q failed: %v", req.Key, err)
		}
	}
	data.Pending = data.Pending[:0]

	data.Manager.Update(dt)
}

func dispatch(m *sound.Manager, req components.SoundRequest) error {
	switch req.Op {
	case components.OpPlayEffect:
		_, err := m.PlayEffect(req.Key, req.Volume)
		return err
	case components.OpPlayUI:
		_, err := m.PlayUI(req.Key, req.Volume)
		return err
	case components.OpPlayBGM:
		return m.PlayBGM(req.Key, req.Volume, req.Loop)
	case components.OpFadeInBGM:
		return m.FadeInBGM(req.Key, req.Duration, req.Volume, req.Easing)
	case components.OpFadeToBGM:
		return m.FadeToBGM(req.Key, req.Duration, req.Volume, req.Easing)
	case components.OpFadeOutBGM:
		return m.FadeOutBGM(req.Duration, req.Easing)
	case components.OpStopBGM:
		m.StopBGM()
	}
	return nil
}

func queue(e *ecs.ECS, req components.SoundRequest) {
	data := GetOrCreateSound(e)
	data.Pending = append(data.Pending, req)
}

// PlayEffect queues a sound effect to be played
func PlayEffect(e *ecs.ECS, key string, volume float64) {
	queue(e, components.SoundRequest{Op: components.OpPlayEffect, Key: key, Volume: volume})
}

// PlayUI queues a UI sound to be played
func PlayUI(e *ecs.ECS, key string, volume float64) {
	queue(e, components.SoundRequest{Op: components.OpPlayUI, Key: key, Volume: volume})
}

func PlayBGM(e *ecs.ECS, key string, volume float64, loop bool) {
	queue(e, components.SoundRequest{Op: components.OpPlayBGM, Key: key, Volume: volume, Loop: loop})
}

// FadeInBGM fades key in over the configured default fade time.
func FadeInBGM(e *ecs.ECS, key string, volume float64) {
	queue(e, components.SoundRequest{
		Op:       components.OpFadeInBGM,
		Key:      key,
		Volume:   volume,
		Duration: cfg.Audio.DefaultFadeSeconds,
		Easing:   defaultEasing(),
	})
}

// FadeToBGM crossfades to key over duration seconds.
func FadeToBGM(e *ecs.ECS, key string, duration, volume float64, ease easing.Kind) {
	queue(e, components.SoundRequest{
		Op:       components.OpFadeToBGM,
		Key:      key,
		Volume:   volume,
		Duration: duration,
		Easing:   ease,
	})
}

// FadeOutBGM starts a music fade out transition
func FadeOutBGM(e *ecs.ECS, duration float64, ease easing.Kind) {
	queue(e, components.SoundRequest{Op: components.OpFadeOutBGM, Duration: duration, Easing: ease})
}

// StopBGM immediately stops the current music
func StopBGM(e *ecs.ECS) {
	queue(e, components.SoundRequest{Op: components.OpStopBGM})
}

func defaultEasing() easing.Kind {
	k, err := easing.ParseKind(cfg.Audio.DefaultEasing)
	if err != nil {
		return easing.Linear
	}
	return k
}
