// Package sound is the audio service the game talks to. It owns every
// playback channel, the BGM crossfade controller and the mixer facade.
package sound

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/automoto/soundmux/bgm"
	"github.com/automoto/soundmux/config"
	"github.com/automoto/soundmux/easing"
	"github.com/automoto/soundmux/mixer"
	"github.com/automoto/soundmux/settings"
	"github.com/automoto/soundmux/voice"
	"github.com/google/uuid"
)

var ErrClipNotFound = errors.New("clip not found")

// Resolver turns a clip key into playable data.
type Resolver interface {
	Resolve(key string) (voice.Clip, error)
}

// SourceFactory creates the device source behind channel index of category.
type SourceFactory func(category voice.Category, index int) voice.Source

type Manager struct {
	resolver Resolver

	bgmSlots [2]*voice.Channel
	bgm      *bgm.Controller
	se       *voice.Pool
	ui       *voice.Pool
	mixer    *mixer.Facade

	clock  float64
	owners map[*voice.Channel]uuid.UUID
}

// New builds all channels up front. Channel counts come from cfg.
func New(cfg config.AudioConfig, resolver Resolver, factory SourceFactory) (*Manager, error) {
	if resolver == nil || factory == nil {
		return nil, errors.New("sound manager needs a resolver and a source factory")
	}

	m := &Manager{
		resolver: resolver,
		mixer:    mixer.NewFacade(config.Mixer),
		owners:   make(map[*voice.Channel]uuid.UUID),
	}

	for i := range m.bgmSlots {
		m.bgmSlots[i] = voice.NewChannel(fmt.Sprintf("%s_%d", voice.BGM, i), factory(voice.BGM, i))
	}
	m.bgm = bgm.NewController(m.bgmSlots[0], m.bgmSlots[1], bgm.WithCrossfadeLoop(cfg.CrossfadeLoop))

	var err error
	if m.se, err = newPool(voice.SE, cfg.MaxSEChannels, factory); err != nil {
		return nil, err
	}
	if m.ui, err = newPool(voice.UI, cfg.MaxUIChannels, factory); err != nil {
		return nil, err
	}
	return m, nil
}

func newPool(category voice.Category, n int, factory SourceFactory) (*voice.Pool, error) {
	sources := make([]voice.Source, 0, max(n, 0))
	for i := 0; i < n; i++ {
		sources = append(sources, factory(category, i))
	}
	p, err := voice.NewPool(category, sources...)
	if err != nil {
		return nil, fmt.Errorf("%s channels: %w", category, err)
	}
	return p, nil
}

// AttachMixer loads the mixer and routes every channel to its bus group.
// Channels whose group is missing keep playing unrouted.
func (m *Manager) AttachMixer(b mixer.Backend) {
	m.mixer.Load(b)
	if !m.mixer.Loaded() {
		return
	}

	if g, ok := m.group(mixer.BGM); ok {
		for _, ch := range m.bgmSlots {
			ch.Route(g)
		}
	}
	if g, ok := m.group(mixer.SFX); ok {
		m.se.Route(g)
	}
	if g, ok := m.group(mixer.UI); ok {
		m.ui.Route(g)
	}
}

func (m *Manager) group(bus mixer.Bus) (mixer.Group, bool) {
	g, ok := m.mixer.Group(bus)
	if !ok {
		log.Printf("Warning: mixer group for %s not found, channels stay unrouted", bus)
	}
	return g, ok
}

func (m *Manager) resolve(key string) (voice.Clip, error) {
	clip, err := m.resolver.Resolve(key)
	if err != nil {
		log.Printf("Warning: Could not resolve sound %q: %v", key, err)
		return voice.Clip{}, fmt.Errorf("resolve %q: %w", key, err)
	}
	if clip.Key == "" {
		clip.Key = key
	}
	return clip, nil
}

// PlayBGM cuts straight to key.
func (m *Manager) PlayBGM(key string, volume float64, loop bool) error {
	clip, err := m.resolve(key)
	if err != nil {
		return err
	}
	m.bgm.Play(clip, volume, loop)
	return nil
}

func (m *Manager) StopBGM() {
	m.bgm.Stop()
}

func (m *Manager) FadeOutBGM(duration float64, e easing.Kind) error {
	return m.bgm.FadeOut(duration, e)
}

func (m *Manager) FadeInBGM(key string, duration, volume float64, e easing.Kind) error {
	clip, err := m.resolve(key)
	if err != nil {
		return err
	}
	return m.bgm.FadeIn(clip, duration, volume, e)
}

// FadeToBGM crossfades to key, or fades it in when nothing is playing.
func (m *Manager) FadeToBGM(key string, duration, volume float64, e easing.Kind) error {
	clip, err := m.resolve(key)
	if err != nil {
		return err
	}
	return m.bgm.FadeTo(clip, duration, volume, e)
}

func (m *Manager) IsPlayingBGM() bool { return m.bgm.IsPlaying() }
func (m *Manager) CurrentBGMVolume() float64 { return m.bgm.Volume() }
func (m *Manager) CurrentBGMKey() string { return m.bgm.Key() }

// BGM exposes the crossfade controller for inspection.
func (m *Manager) BGM() *bgm.Controller { return m.bgm }

// PlayEffect plays key once on a sound effect channel.
func (m *Manager) PlayEffect(key string, volume float64) (Ticket, error) {
	return m.playOneShot(m.se, key, volume)
}

// PlayUI plays key once on a UI channel.
func (m *Manager) PlayUI(key string, volume float64) (Ticket, error) {
	return m.playOneShot(m.ui, key, volume)
}

func (m *Manager) playOneShot(p *voice.Pool, key string, volume float64) (Ticket, error) {
	clip, err := m.resolve(key)
	if err != nil {
		return Ticket{}, err
	}
	if clip.Gain > 0 {
		volume *= clip.Gain
	}
	idx := p.Play(clip, volume, m.clock)
	t := Ticket{Category: p.Category(), Channel: idx, ID: uuid.New()}
	m.owners[p.Channel(idx)] = t.ID
	return t, nil
}

func (m *Manager) ticketChannel(t Ticket) *voice.Channel {
	var ch *voice.Channel
	switch t.Category {
	case voice.SE:
		ch = m.se.Channel(t.Channel)
	case voice.UI:
		ch = m.ui.Channel(t.Channel)
	}
	if ch == nil || t.ID == uuid.Nil || m.owners[ch] != t.ID {
		return nil
	}
	return ch
}

// StopTicket stops the sound t refers to. A channel that was since reused
// for another sound is left alone.
func (m *Manager) StopTicket(t Ticket) bool {
	ch := m.ticketChannel(t)
	if ch == nil || !ch.IsPlaying() {
		return false
	}
	ch.Stop()
	return true
}

func (m *Manager) TicketPlaying(t Ticket) bool {
	ch := m.ticketChannel(t)
	return ch != nil && ch.IsPlaying()
}

// SetVolume sets a bus volume and re-applies group gains to live channels.
func (m *Manager) SetVolume(bus mixer.Bus, ratio float64) {
	m.mixer.SetVolume(bus, ratio)
	m.refresh()
}

func (m *Manager) GetVolume(bus mixer.Bus) float64 {
	return m.mixer.GetVolume(bus)
}

// LoadSetting applies the persisted bus volumes.
func (m *Manager) LoadSetting(s *settings.GameSetting) {
	if s == nil {
		return
	}
	s.Apply(m)
}

func (m *Manager) refresh() {
	for _, ch := range m.bgmSlots {
		ch.Refresh()
	}
	m.se.Refresh()
	m.ui.Refresh()
}

// Update advances the game clock by dt seconds and ticks BGM fades.
func (m *Manager) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	m.clock += dt
	m.bgm.Tick(dt)
}

// Clock is the game time in seconds seen by Update.
func (m *Manager) Clock() float64 { return m.clock }

func (m *Manager) StopAll() {
	m.bgm.Stop()
	m.se.StopAll()
	m.ui.StopAll()
}

// Playing reports how many channels of category are busy.
func (m *Manager) Playing(category voice.Category) int {
	switch category {
	case voice.BGM:
		n := 0
		for _, ch := range m.bgmSlots {
			if ch.IsPlaying() {
				n++
			}
		}
		return n
	case voice.SE:
		return m.se.Playing()
	case voice.UI:
		return m.ui.Playing()
	}
	return 0
}
