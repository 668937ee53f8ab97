package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length tone whose frequency slides linearly
// from freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewTone creates a tone of the given wave and duration.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep creates a tone that slides from freq to endFreq.
func NewSweep(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		f := o.freq + (o.endFreq-o.freq)*t
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade scales a stream linearly down to silence over its length.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewFade fades s out over d.
func NewFade(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: max(rate.N(d), 1)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.position)/float64(f.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume applies a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Effect durations.
const (
	fireDuration    = 60 * time.Millisecond
	explodeDuration = 180 * time.Millisecond
	shipHitDuration = 450 * time.Millisecond
	noteDuration    = 90 * time.Millisecond
)

// Sound builds the streamer for an effect. It returns nil for an unknown effect.
func Sound(e Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case EffectFire:
		sine, err := generators.SineTone(rate, 880)
		if err != nil {
			return nil
		}
		return withVolume(NewFade(beep.Take(rate.N(fireDuration), sine), fireDuration, rate), 0.3)
	case EffectExplode:
		noise := NewTone(0, explodeDuration, WaveNoise, rate)
		return withVolume(NewFade(noise, explodeDuration, rate), 0.4)
	case EffectShipHit:
		sweep := NewSweep(440, 55, shipHitDuration, WaveSquare, rate)
		return withVolume(NewFade(sweep, shipHitDuration, rate), 0.25)
	case EffectLevelUp:
		// C5 E5 G5 C6
		return withVolume(beep.Seq(
			NewTone(523.25, noteDuration, WaveSquare, rate),
			NewTone(659.25, noteDuration, WaveSquare, rate),
			NewTone(783.99, noteDuration, WaveSquare, rate),
			NewFade(NewTone(1046.5, 2*noteDuration, WaveSquare, rate), 2*noteDuration, rate),
		), 0.2)
	case EffectGameOver:
		return withVolume(beep.Seq(
			NewTone(392, 2*noteDuration, WaveSquare, rate),
			NewTone(311.13, 2*noteDuration, WaveSquare, rate),
			NewFade(NewTone(196, 4*noteDuration, WaveSquare, rate), 4*noteDuration, rate),
		), 0.2)
	default:
		return nil
	}
}
