package audio

import (
	gomath "math"
	"math/rand"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/Faultbox/portfolio-room/internal/engine/audio/cue"
)

// Cue shapes
const (
	hoverDuration = 45 * time.Millisecond
	hoverFreq     = 1760.0
	hoverGain     = 0.12

	clickDuration  = 110 * time.Millisecond
	clickStartFreq = 880.0
	clickEndFreq   = 220.0
	clickGain      = 0.25

	whooshDuration  = 650 * time.Millisecond
	whooshLowCutHz  = 250.0
	whooshHighCutHz = 2400.0
	whooshGain      = 0.35
)

// Synthesize builds a fresh streamer for c. Each call returns an independent
// streamer, so concurrent cues never share synthesis state.
func Synthesize(c cue.Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case cue.Hover:
		return newTone(sr, hoverDuration, hoverGain,
			func(float64) float64 { return hoverFreq },
			func(p float64) float64 { return attackDecay(p, 0.05, 6) })
	case cue.Click:
		return newTone(sr, clickDuration, clickGain,
			func(p float64) float64 { return sweepExp(clickStartFreq, clickEndFreq, p) },
			func(p float64) float64 { return attackDecay(p, 0.02, 4) })
	case cue.Whoosh:
		return newNoiseSweep(sr, whooshDuration, whooshGain, rand.Int63())
	default:
		return nil
	}
}

// tone is a sine oscillator with time-varying pitch and amplitude.
// freq and env take the normalized position in [0, 1).
type tone struct {
	sr    beep.SampleRate
	total int
	pos   int
	phase float64
	gain  float64
	freq  func(p float64) float64
	env   func(p float64) float64
}

func newTone(sr beep.SampleRate, d time.Duration, gain float64, freq, env func(float64) float64) *tone {
	return &tone{sr: sr, total: sr.N(d), gain: gain, freq: freq, env: env}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		p := float64(t.pos) / float64(t.total)
		v := t.gain * t.env(p) * gomath.Sin(2*gomath.Pi*t.phase)
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq(p) / float64(t.sr)
		t.phase -= gomath.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// noiseSweep is white noise through a one-pole low-pass whose cutoff rises
// and falls over the cue, which reads as air rushing past.
type noiseSweep struct {
	sr    beep.SampleRate
	total int
	pos   int
	gain  float64
	rng   *rand.Rand
	last  float64
}

func newNoiseSweep(sr beep.SampleRate, d time.Duration, gain float64, seed int64) *noiseSweep {
	return &noiseSweep{
		sr:    sr,
		total: sr.N(d),
		gain:  gain,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (w *noiseSweep) Stream(samples [][2]float64) (n int, ok bool) {
	if w.pos >= w.total {
		return 0, false
	}
	for i := range samples {
		if w.pos >= w.total {
			return i, true
		}
		p := float64(w.pos) / float64(w.total)

		cutoff := whooshLowCutHz + (whooshHighCutHz-whooshLowCutHz)*gomath.Sin(gomath.Pi*p)
		alpha := lowPassAlpha(cutoff, w.sr)
		noise := w.rng.Float64()*2 - 1
		w.last += alpha * (noise - w.last)

		v := w.gain * attackRelease(p, 0.3, 0.5) * w.last
		samples[i][0] = v
		samples[i][1] = v
		w.pos++
	}
	return len(samples), true
}

func (w *noiseSweep) Err() error { return nil }

// lowPassAlpha is the smoothing factor of a one-pole low-pass at cutoff.
func lowPassAlpha(cutoff float64, sr beep.SampleRate) float64 {
	dt := 1 / float64(sr)
	rc := 1 / (2 * gomath.Pi * cutoff)
	return dt / (rc + dt)
}

// sweepExp moves exponentially from a to b as p goes 0 -> 1.
func sweepExp(a, b, p float64) float64 {
	return a * gomath.Pow(b/a, p)
}

// attackDecay ramps up linearly over attack then decays exponentially.
func attackDecay(p, attack, decay float64) float64 {
	if p < attack {
		return p / attack
	}
	return gomath.Exp(-decay * (p - attack))
}

// attackRelease ramps up over attack and down over the final release fraction.
func attackRelease(p, attack, release float64) float64 {
	switch {
	case p < attack:
		return p / attack
	case p > 1-release:
		return (1 - p) / release
	default:
		return 1
	}
}
