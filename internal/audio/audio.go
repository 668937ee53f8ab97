// Package audio plays short synthesized sound effects through the speaker.
// A player that failed to initialize stays silent.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate of every effect.
const SampleRate = beep.SampleRate(44100)

// Effect identifies a sound effect.
type Effect int

const (
	EffectFire Effect = iota
	EffectExplode
	EffectShipHit
	EffectLevelUp
	EffectGameOver
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectFire:
		return "fire"
	case EffectExplode:
		return "explode"
	case EffectShipHit:
		return "ship_hit"
	case EffectLevelUp:
		return "level_up"
	case EffectGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("effect(%d)", int(e))
	}
}

// Player mixes sound effects onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts an effect. It reports whether the effect was queued.
func (p *Player) Play(e Effect) bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	s := Sound(e, SampleRate)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
