// Package audio synthesizes the game's sound cues from raw oscillators.
// No samples ship with the binary; every cue is generated at play time.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveShape selects the oscillator waveform.
type WaveShape int

const (
	ShapeSine WaveShape = iota
	ShapeSquare
	ShapeSaw
	ShapeNoise
)

// tone is a bounded oscillator whose pitch glides linearly between two
// frequencies over its lifetime. A plain note uses equal endpoints.
type tone struct {
	from   float64
	to     float64
	phase  float64
	shape  WaveShape
	rate   beep.SampleRate
	length int
	pos    int
}

// NewTone creates a fixed-pitch oscillator streaming for the duration.
func NewTone(freq float64, d time.Duration, shape WaveShape, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, d, shape, rate)
}

// NewGlide creates an oscillator whose pitch ramps from one frequency to
// another over the duration.
func NewGlide(from, to float64, d time.Duration, shape WaveShape, rate beep.SampleRate) beep.Streamer {
	return &tone{
		from:   from,
		to:     to,
		shape:  shape,
		rate:   rate,
		length: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, false
		}

		var val float64
		switch t.shape {
		case ShapeSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case ShapeSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case ShapeSaw:
			val = 2.0 * (t.phase - 0.5)
		case ShapeNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // keep in [0, 1)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope applies attack and release ramps to a stream so cues never
// click at their edges.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	sustain  int
	total    int
}

// NewEnvelope shapes a streamer with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		sustain:  sus,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, false
		}

		vol := 1.0
		if e.pos < e.attack && e.attack > 0 {
			vol = float64(e.pos) / float64(e.attack)
		}
		releaseStart := e.attack + e.sustain
		if e.pos >= releaseStart && e.release > 0 {
			remaining := e.total - e.pos
			vol = float64(remaining) / float64(e.release)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a gain stage. math.Log2(0) is -Inf, so
// zero volume switches the effect to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue generators. Each returns a finished one-shot streamer; the mixer
// drops it once drained.

// jumpSound is a quick upward square blip.
func jumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 70 * time.Millisecond
	blip := NewGlide(440, 880, d, ShapeSquare, rate)
	shaped := NewEnvelope(blip, d, 2*time.Millisecond, 35*time.Millisecond, rate)
	return newVolume(shaped, vol*0.5)
}

// crashSound layers a noise burst over a falling rumble.
func crashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 220 * time.Millisecond

	noise := NewTone(0, d, ShapeNoise, rate)
	noiseShaped := NewEnvelope(noise, d, 1*time.Millisecond, 180*time.Millisecond, rate)

	rumble := NewGlide(140, 50, d, ShapeSaw, rate)
	rumbleShaped := NewEnvelope(rumble, d, 1*time.Millisecond, 160*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
	return newVolume(mixed, vol)
}

// milestoneSound is a two-note chime, B5 then E6.
func milestoneSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const (
		d1 = 70 * time.Millisecond
		d2 = 140 * time.Millisecond
	)

	n1 := NewTone(987.77, d1, ShapeSquare, rate)
	n1Shaped := NewEnvelope(n1, d1, 2*time.Millisecond, 20*time.Millisecond, rate)

	n2 := NewTone(1318.51, d2, ShapeSquare, rate)
	n2Shaped := NewEnvelope(n2, d2, 2*time.Millisecond, 90*time.Millisecond, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.4)
}

// speedUpSound is a rising saw sweep announcing the faster pace.
func speedUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const d = 200 * time.Millisecond
	sweep := NewGlide(220, 660, d, ShapeSaw, rate)
	shaped := NewEnvelope(sweep, d, 10*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(shaped, vol*0.45)
}

// powerUpSound is a three-note sine arpeggio, C5 E5 G5.
func powerUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	const nd = 55 * time.Millisecond

	note := func(freq float64) beep.Streamer {
		t := NewTone(freq, nd, ShapeSine, rate)
		return NewEnvelope(t, nd, 2*time.Millisecond, 15*time.Millisecond, rate)
	}

	arpeggio := beep.Seq(note(523.25), note(659.25), note(783.99))
	return newVolume(arpeggio, vol*0.6)
}
