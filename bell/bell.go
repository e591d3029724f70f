// Package bell plays the short tone rung when cursor navigation hits an edge
package bell

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// Attack/release ramp to avoid clicks
	rampDuration = 5 * time.Millisecond

	amplitude = 0.2
)

// Bell rings a sine tone through the speaker
// Zero value and uninitialized bells are silent
type Bell struct {
	mu          sync.Mutex
	frequency   float64
	duration    time.Duration
	enabled     bool
	initialized bool
}

// New creates a bell; Init must be called before it makes sound
func New(enabled bool, frequency float64, duration time.Duration) *Bell {
	return &Bell{
		enabled:   enabled,
		frequency: frequency,
		duration:  duration,
	}
}

// Init opens the audio device. A disabled bell never opens it.
func (b *Bell) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized || !b.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("bell: speaker init: %w", err)
	}
	b.initialized = true
	return nil
}

// Close stops pending sounds and releases the audio device
func (b *Bell) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Close()
	b.initialized = false
}

// Ring plays one tone. Safe to call on nil or silent bells.
func (b *Bell) Ring() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || !b.enabled || b.duration <= 0 {
		return
	}
	tone, err := Tone(sampleRate, b.frequency, b.duration)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Enabled reports whether the bell would sound once initialized
func (b *Bell) Enabled() bool {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// SetEnabled toggles the bell
func (b *Bell) SetEnabled(on bool) {
	b.mu.Lock()
	b.enabled = on
	b.mu.Unlock()
}

// Tone builds a finite enveloped sine streamer
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	total := sr.N(d)
	return &envelope{
		src:   beep.Take(total, sine),
		total: total,
		ramp:  max(1, min(sr.N(rampDuration), total/2)),
	}, nil
}

// envelope scales amplitude with a linear attack and release
type envelope struct {
	src   beep.Streamer
	pos   int
	total int
	ramp  int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		gain := amplitude * e.gain(e.pos)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	switch {
	case pos < e.ramp:
		return float64(pos) / float64(e.ramp)
	case pos >= e.total-e.ramp:
		return math.Max(0, float64(e.total-pos)/float64(e.ramp))
	default:
		return 1
	}
}

func (e *envelope) Err() error {
	return e.src.Err()
}
