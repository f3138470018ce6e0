package voice

import (
	"errors"
	"fmt"
)

// ErrEmptyPool is returned when a pool is built without channels.
var ErrEmptyPool = errors.New("voice: pool needs at least one channel")

// Pool is a fixed set of channels for one category.
type Pool struct {
	category Category
	channels []*Channel
}

// NewPool creates one channel per source, named "<category>_<index>".
func NewPool(category Category, sources ...Source) (*Pool, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", category, ErrEmptyPool)
	}
	p := &Pool{
		category: category,
		channels: make([]*Channel, len(sources)),
	}
	for i, src := range sources {
		p.channels[i] = NewChannel(fmt.Sprintf("%s_%d", category, i), src)
	}
	return p, nil
}

func (p *Pool) Category() Category { return p.category }

func (p *Pool) Len() int { return len(p.channels) }

func (p *Pool) Channel(i int) *Channel {
	if i < 0 || i >= len(p.channels) {
		return nil
	}
	return p.channels[i]
}

// Acquire picks a channel for a new sound and stops it.
//
// The first idle channel in index order wins. When every channel is busy the
// one started most recently is stolen; ties go to the lowest index.
func (p *Pool) Acquire() int {
	channel := -1
	for i, ch := range p.channels {
		if !ch.IsPlaying() {
			channel = i
			break
		}
	}

	if channel == -1 {
		newest := 0.0
		channel = 0
		for i, ch := range p.channels {
			if ch.LastStart > newest {
				newest = ch.LastStart
				channel = i
			}
		}
	}

	p.channels[channel].Stop()
	return channel
}

// Play starts clip once on an acquired channel and returns its index.
func (p *Pool) Play(clip Clip, volume float64, now float64) int {
	i := p.Acquire()
	p.channels[i].Play(clip, volume, false, now)
	return i
}

// Playing counts busy channels.
func (p *Pool) Playing() int {
	n := 0
	for _, ch := range p.channels {
		if ch.IsPlaying() {
			n++
		}
	}
	return n
}

func (p *Pool) StopAll() {
	for _, ch := range p.channels {
		ch.Stop()
	}
}

// Route sends every channel of the pool through out.
func (p *Pool) Route(out Output) {
	for _, ch := range p.channels {
		ch.Route(out)
	}
}

func (p *Pool) Refresh() {
	for _, ch := range p.channels {
		ch.Refresh()
	}
}
