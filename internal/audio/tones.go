package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/fruit-breaker/internal/games/fruitbreaker/sim"
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
)

// tone is a sequence of equal-length notes, or a linear sweep when sweep is set.
type tone struct {
	notes    []float64 // Hz
	duration time.Duration
	wave     waveform
	sweep    bool
	amp      float64
}

var cueTones = map[sim.Cue]tone{
	sim.CueBrickHit:            {notes: []float64{660}, duration: 60 * time.Millisecond, amp: 0.25},
	sim.CuePeachHit:            {notes: []float64{180}, duration: 150 * time.Millisecond, wave: waveSquare, amp: 0.15},
	sim.CueFruitCollected:      {notes: []float64{880, 1320}, duration: 120 * time.Millisecond, amp: 0.25},
	sim.CueHeartCollected:      {notes: []float64{523, 659, 784}, duration: 240 * time.Millisecond, amp: 0.25},
	sim.CueMegaBasketActivated: {notes: []float64{300, 900}, duration: 300 * time.Millisecond, sweep: true, amp: 0.2},
}

// Streamer returns a fresh streamer for the cue, or nil for an unknown cue.
func Streamer(c sim.Cue) beep.Streamer {
	t, ok := cueTones[c]
	if !ok {
		return nil
	}
	return t.streamer(sampleRate)
}

func (t tone) streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(t.duration)
	perNote := total / len(t.notes)
	pos := 0
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			freq := t.frequency(pos, total, perNote)
			phase += 2 * math.Pi * freq / float64(sr)

			var v float64
			switch t.wave {
			case waveSquare:
				v = math.Copysign(1, math.Sin(phase))
			default:
				v = math.Sin(phase)
			}
			v *= t.amp * envelope(pos, total)

			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

func (t tone) frequency(pos, total, perNote int) float64 {
	if t.sweep && len(t.notes) >= 2 {
		f := float64(pos) / float64(total)
		return t.notes[0] + f*(t.notes[len(t.notes)-1]-t.notes[0])
	}
	idx := min(pos/max(perNote, 1), len(t.notes)-1)
	return t.notes[idx]
}

// envelope applies a short linear attack and release to avoid clicks.
func envelope(pos, total int) float64 {
	const ramp = 200
	r := min(ramp, total/4)
	if r == 0 {
		return 1
	}
	switch {
	case pos < r:
		return float64(pos) / float64(r)
	case pos >= total-r:
		return float64(total-pos) / float64(r)
	default:
		return 1
	}
}
