package mixer

import (
	"sync"

	"github.com/automoto/soundmux/config"
)

// Bank is an in-process Backend. Each group has its own dB parameter and a
// parent; a group's gain is its ratio times every ancestor's.
type Bank struct {
	mu     sync.RWMutex
	params map[string]float64
	groups map[string]*BankGroup
}

// BankGroup is a node of the Bank's group tree.
type BankGroup struct {
	bank   *Bank
	name   string
	param  string
	parent *BankGroup
}

// NewBank builds the standard Master -> {BGM, Effect, UI} tree with every
// parameter at 0 dB.
func NewBank(cfg config.MixerConfig) *Bank {
	b := &Bank{
		params: make(map[string]float64),
		groups: make(map[string]*BankGroup),
	}
	master := b.AddGroup(cfg.MasterGroup, cfg.MasterParam, nil)
	b.AddGroup(cfg.BGMGroup, cfg.BGMParam, master)
	b.AddGroup(cfg.SEGroup, cfg.SEParam, master)
	b.AddGroup(cfg.UIGroup, cfg.UIParam, master)
	return b
}

// AddGroup registers a group controlled by param, exposing param at 0 dB.
func (b *Bank) AddGroup(name, param string, parent *BankGroup) *BankGroup {
	b.mu.Lock()
	defer b.mu.Unlock()
	g := &BankGroup{bank: b, name: name, param: param, parent: parent}
	b.groups[name] = g
	if _, ok := b.params[param]; !ok && param != "" {
		b.params[param] = 0
	}
	return g
}

func (b *Bank) SetFloat(name string, value float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.params[name]; !ok {
		return false
	}
	b.params[name] = value
	return true
}

func (b *Bank) GetFloat(name string) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.params[name]
	return v, ok
}

func (b *Bank) FindGroup(name string) (Group, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	g, ok := b.groups[name]
	if !ok {
		return nil, false
	}
	return g, true
}

func (g *BankGroup) Name() string { return g.name }

// Gain is the linear product of this group's and its ancestors' volumes.
func (g *BankGroup) Gain() float64 {
	gain := 1.0
	for n := g; n != nil; n = n.parent {
		if db, ok := g.bank.GetFloat(n.param); ok {
			gain *= FromDecibel(db)
		}
	}
	return gain
}
