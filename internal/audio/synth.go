package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bufferLength = 100 * time.Millisecond
	masterVolume = 0.8
)

// Synth plays the game's cues through a shared mixer. Before Start, after
// Close, or when no audio device is available, every cue degrades to
// silence so the game keeps running without sound.
type Synth struct {
	mixer *beep.Mixer
	rate  beep.SampleRate
	vol   float64
	ready atomic.Bool
	muted atomic.Bool
}

// NewSynth creates a silent synth. Call Start to open the speaker.
func NewSynth() *Synth {
	return &Synth{
		mixer: &beep.Mixer{},
		rate:  sampleRate,
		vol:   masterVolume,
	}
}

// Start opens the speaker and attaches the mixer. Safe to call twice.
func (s *Synth) Start() error {
	if s.ready.Load() {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(bufferLength)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.ready.Store(true)
	return nil
}

// Close drops pending cues and releases the audio device.
func (s *Synth) Close() {
	if !s.ready.Load() {
		return
	}
	s.ready.Store(false)
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// SetMuted silences all cues without detaching the speaker.
func (s *Synth) SetMuted(muted bool) {
	s.muted.Store(muted)
}

// ToggleMuted flips the mute switch and reports the new state.
func (s *Synth) ToggleMuted() bool {
	muted := !s.muted.Load()
	s.muted.Store(muted)
	return muted
}

// Muted reports whether cues are currently silenced.
func (s *Synth) Muted() bool {
	return s.muted.Load()
}

// play queues a one-shot streamer on the live mixer. The speaker streams
// the mixer concurrently, so mutation happens under its lock.
func (s *Synth) play(gen beep.Streamer) {
	if !s.ready.Load() || s.muted.Load() {
		return
	}
	speaker.Lock()
	s.mixer.Add(gen)
	speaker.Unlock()
}

// Jump plays the jump blip. Implements the game's cue surface.
func (s *Synth) Jump() {
	s.play(jumpSound(s.rate, s.vol))
}

// Crash plays the death thump.
func (s *Synth) Crash() {
	s.play(crashSound(s.rate, s.vol))
}

// Milestone plays the hundred-point chime.
func (s *Synth) Milestone() {
	s.play(milestoneSound(s.rate, s.vol))
}

// SpeedUp plays the pace-increase sweep.
func (s *Synth) SpeedUp() {
	s.play(speedUpSound(s.rate, s.vol))
}

// PowerUp plays the pickup arpeggio.
func (s *Synth) PowerUp() {
	s.play(powerUpSound(s.rate, s.vol))
}
