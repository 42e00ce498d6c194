// Package audio plays the simulation's sound cues as short synthesized
// tones through the system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker/sim"
)

const sampleRate = beep.SampleRate(44100)

// Player maps sim cues to tones. Cue never blocks: tones are queued on a
// mixer that the speaker drains on its own goroutine. An uninitialized or
// muted Player drops cues silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
	gain        float64
}

// NewPlayer creates a player at full volume. Call Init before use.
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	p := &Player{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
		gain:   1,
	}
	p.applyGain()
	return p
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.volume)
	p.initialized = true
	return nil
}

// Close stops all queued tones.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

// Cue implements sim.CueSink.
func (p *Player) Cue(c sim.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := Streamer(c)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted turns all cues off or on.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// SetVolume sets the output gain in [0, 1].
func (p *Player) SetVolume(gain float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gain = math.Max(0, math.Min(1, gain))
	if p.initialized {
		speaker.Lock()
		p.applyGain()
		speaker.Unlock()
		return
	}
	p.applyGain()
}

// applyGain converts the linear gain into the base-2 exponent used by
// effects.Volume.
func (p *Player) applyGain() {
	if p.gain <= 0 {
		p.volume.Silent = true
		return
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(p.gain)
}
