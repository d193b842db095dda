// Package audio plays short feedback tones through the system speaker.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	eatFreq       = 880.0
	eatDuration   = 50 * time.Millisecond
	resetFreq     = 220.0
	resetDuration = 150 * time.Millisecond
	volume        = 0.3
)

// Chime plays a blip when food is eaten and a lower one on reset.
// A nil or disabled Chime is silent.
type Chime struct {
	enabled bool
	logger  *log.Logger
}

// NewChime opens the speaker when enabled. Failing to open it is not fatal:
// the chime stays silent and the failure is logged.
func NewChime(enabled bool, logger *log.Logger) *Chime {
	c := &Chime{logger: logger}
	if !enabled {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return c
	}
	c.enabled = true
	return c
}

// Enabled reports whether the speaker is open.
func (c *Chime) Enabled() bool {
	return c != nil && c.enabled
}

// Eat plays the food blip.
func (c *Chime) Eat() {
	c.play(eatFreq, eatDuration)
}

// Reset plays the collision blip.
func (c *Chime) Reset() {
	c.play(resetFreq, resetDuration)
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c.Enabled() {
		speaker.Close()
		c.enabled = false
	}
}

func (c *Chime) play(freq float64, d time.Duration) {
	if !c.Enabled() {
		return
	}
	tone, err := Tone(freq, d, volume)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("cannot build tone", "freq", freq, "error", err)
		}
		return
	}
	speaker.Play(tone)
}

// Tone returns a sine blip of the given frequency, length and linear volume.
func Tone(freq float64, d time.Duration, vol float64) (beep.Streamer, error) {
	if vol <= 0 || vol > 1 {
		return nil, fmt.Errorf("audio: volume %v out of range (0, 1]", vol)
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Base:     2,
		Volume:   math.Log2(vol),
	}, nil
}
