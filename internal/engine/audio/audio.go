// Package audio provides the three procedurally synthesized feedback cues
// (hover, click and whoosh) and the global mute switch.
package audio

import (
	"errors"
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/portfolio-room/internal/engine/audio/cue"
	"github.com/Faultbox/portfolio-room/internal/logger"
)

// DefaultSampleRate is the default sample rate for cue synthesis.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrUnavailable is reported (and logged once) when the audio output cannot be opened.
var ErrUnavailable = errors.New("audio output unavailable")

// Output is the device the cue mixer plays into.
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Clear()
}

// speakerOutput plays through the beep speaker.
type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Clear()               { speaker.Clear() }

// MuteStore persists the mute flag between runs.
type MuteStore interface {
	Muted() bool
	SetMuted(muted bool) error
}

type outputState int

const (
	outputPending outputState = iota
	outputReady
	outputUnavailable
)

// Service plays feedback cues. The output is opened lazily on the first cue
// so nothing touches the audio device until sound is actually wanted.
type Service struct {
	mu sync.Mutex

	out        Output
	state      outputState
	sampleRate beep.SampleRate
	mixer      *beep.Mixer
	volume     float64

	muted bool
	prefs MuteStore

	synth func(cue.Cue, beep.SampleRate) beep.Streamer
	log   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithOutput replaces the default speaker output.
func WithOutput(out Output) Option {
	return func(s *Service) { s.out = out }
}

// WithMuteStore loads the initial mute flag from prefs and persists toggles to it.
func WithMuteStore(prefs MuteStore) Option {
	return func(s *Service) { s.prefs = prefs }
}

// WithVolume sets the cue volume (0.0 to 1.0).
func WithVolume(vol float64) Option {
	return func(s *Service) { s.volume = clamp(vol, 0, 1) }
}

// WithSampleRate sets the synthesis and output sample rate.
func WithSampleRate(sr beep.SampleRate) Option {
	return func(s *Service) { s.sampleRate = sr }
}

// New creates a feedback service. The output is not opened here.
func New(opts ...Option) *Service {
	s := &Service{
		out:        speakerOutput{},
		sampleRate: DefaultSampleRate,
		volume:     1.0,
		synth:      Synthesize,
		log:        logger.Named("audio"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.prefs != nil {
		s.muted = s.prefs.Muted()
	}
	return s
}

// PlaySound plays c once. It is a no-op while muted or when the output
// cannot be opened. Concurrent cues overlap in the mixer.
func (s *Service) PlaySound(c cue.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted {
		return
	}
	if err := s.ensureOutput(); err != nil {
		return
	}

	streamer := s.synth(c, s.sampleRate)
	if streamer == nil {
		return
	}
	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeToDb(s.volume) / 6,
		Silent:   s.volume <= 0,
	}

	s.out.Lock()
	s.mixer.Add(vol)
	s.out.Unlock()
}

// ensureOutput opens the output on first use. A failure is remembered so
// later cues stay silent without retrying. Caller must hold the mutex.
func (s *Service) ensureOutput() error {
	switch s.state {
	case outputReady:
		return nil
	case outputUnavailable:
		return ErrUnavailable
	}

	if err := s.out.Init(s.sampleRate, s.sampleRate.N(time.Second/30)); err != nil {
		s.state = outputUnavailable
		s.log.Warn("audio output unavailable, feedback cues disabled", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.mixer = &beep.Mixer{}
	s.out.Play(s.mixer)
	s.state = outputReady
	s.log.Debug("audio output opened", zap.Int("sample_rate", int(s.sampleRate)))
	return nil
}

// ToggleMute flips the mute flag, persists it and returns the new value.
func (s *Service) ToggleMute() bool {
	s.mu.Lock()
	s.muted = !s.muted
	muted := s.muted
	prefs := s.prefs
	s.mu.Unlock()

	if prefs != nil {
		if err := prefs.SetMuted(muted); err != nil {
			s.log.Warn("failed to persist mute flag", zap.Bool("muted", muted), zap.Error(err))
		}
	}
	s.log.Info("mute toggled", zap.Bool("muted", muted))
	return muted
}

// IsMuted reports whether cues are silenced.
func (s *Service) IsMuted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Available reports whether the output has been opened successfully.
func (s *Service) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == outputReady
}

// Close stops any playing cues.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == outputReady {
		s.out.Clear()
	}
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * gomath.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
