// Package sound plays short synthesized feedback tones, interrupting a tone
// that is still playing when it is requested again.
package sound

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

// Sound names
const (
	INTRO = "intro"
	START = "start"
	BUMP  = "bump"
	QUIT  = "quit"
)

const CommonSampleRate = 44100 // Common sample rate for all tones

// Tone is a sine note of a given pitch and length. A zero frequency is a rest.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// tunes are the built-in samples.
var tunes = map[string][]Tone{
	INTRO: {
		{392.00, 160 * time.Millisecond}, {0, 40 * time.Millisecond},
		{523.25, 160 * time.Millisecond}, {0, 40 * time.Millisecond},
		{659.25, 160 * time.Millisecond}, {0, 40 * time.Millisecond},
		{523.25, 240 * time.Millisecond}, {0, 360 * time.Millisecond},
	},
	START: {{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 140 * time.Millisecond}},
	BUMP:  {{110, 70 * time.Millisecond}},
	QUIT:  {{659.25, 110 * time.Millisecond}, {0, 30 * time.Millisecond}, {440, 180 * time.Millisecond}},
}

// Manager controls the loading and playback of audio samples.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	ctrl       map[string]*beep.Ctrl
	mix        *beep.Mixer
	format     beep.Format
	muted      bool
	vol        *effects.Volume    // master volume
	sampleVols map[string]float64 // per-sample volume in dB
	backend    any
	pulseCtrl  *pulseControl
}

// NewManager initializes the audio backend and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := newManager(sampleRate)
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, err
	}
	return mgr, nil
}

// newManager creates a manager that mixes samples but is not attached to any output.
func newManager(sampleRate beep.SampleRate) *Manager {
	mgr := &Manager{
		samples:    make(map[string]*beep.Buffer),
		ctrl:       make(map[string]*beep.Ctrl),
		mix:        &beep.Mixer{},
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
		sampleVols: make(map[string]float64),
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	return mgr
}

// LoadSamples synthesizes all built-in samples.
func (mgr *Manager) LoadSamples() error {
	for name, tones := range tunes {
		if err := mgr.LoadTones(name, tones...); err != nil {
			return err
		}
	}
	return nil
}

// LoadTones renders the tones one after another into a sample named name.
func (mgr *Manager) LoadTones(name string, tones ...Tone) error {
	if len(tones) == 0 {
		return errors.New("no tones for sample " + name)
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	sr := mgr.format.SampleRate
	var parts []beep.Streamer
	for _, t := range tones {
		n := sr.N(t.Duration)
		if n <= 0 {
			continue
		}
		if t.Freq <= 0 {
			parts = append(parts, rest(n))
			continue
		}
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return err
		}
		parts = append(parts, fade(beep.Take(n, sine), n))
	}

	buf := beep.NewBuffer(mgr.format)
	buf.Append(beep.Seq(parts...))
	mgr.samples[name] = buf
	return nil
}

// rest streams n frames of silence.
func rest(n int) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if n <= 0 {
			return 0, false
		}
		k := min(n, len(samples))
		for i := range samples[:k] {
			samples[i] = [2]float64{}
		}
		n -= k
		return k, true
	})
}

// endless pads s with silence so an idle mixer never ends the output stream.
func endless(s beep.Streamer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, _ := s.Stream(samples)
		for i := n; i < len(samples); i++ {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	})
}

// fade applies a short linear attack and release to avoid clicks.
func fade(s beep.Streamer, n int) beep.Streamer {
	ramp := n / 10
	if ramp == 0 {
		return s
	}
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		k, ok := s.Stream(samples)
		for i := 0; i < k; i++ {
			g := 1.0
			switch {
			case pos < ramp:
				g = float64(pos) / float64(ramp)
			case pos >= n-ramp:
				g = float64(n-pos) / float64(ramp)
			}
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return k, ok
	})
}

func (mgr *Manager) setVolume(name string, db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.sampleVols[name] = db
}

// playInternal plays the sample by name, optionally looping it.
func (mgr *Manager) playInternal(name string, loop bool) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.New("sample not loaded: " + name)
	}
	if mgr.muted {
		return nil
	}

	mgr.lockOutput()
	defer mgr.unlockOutput()

	// Interrupt previous if exists
	if ctrl, exists := mgr.ctrl[name]; exists {
		ctrl.Streamer = nil
	}

	var stream beep.Streamer
	if loop {
		stream = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	} else {
		stream = buf.Streamer(0, buf.Len())
	}

	// Wrap with per-sample volume
	vol := &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   mgr.sampleVols[name], // default 0 if not set
		Silent:   false,
	}

	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}
	mgr.mix.Add(ctrl)
	mgr.ctrl[name] = ctrl
	return nil
}

// Play stops current playback of the sample (if any) and plays it from the start.
func (mgr *Manager) Play(name string) error {
	return mgr.playInternal(name, false)
}

// PlayWithVolume plays the sample with specified volume in dB.
func (mgr *Manager) PlayWithVolume(name string, db float64) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.setVolume(name, db)
	return mgr.playInternal(name, false)
}

// PlayLoop plays the sample in a continuous loop until stopped.
func (mgr *Manager) PlayLoop(name string) error {
	return mgr.playInternal(name, true)
}

// Playing reports whether the sample was started and not stopped since.
func (mgr *Manager) Playing(name string) bool {
	if mgr == nil {
		return false
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	ctrl, ok := mgr.ctrl[name]
	return ok && ctrl.Streamer != nil && !ctrl.Paused
}

// StopListed stops playback of the specified samples by name.
// If a sample is not currently playing, it is ignored.
func (mgr *Manager) StopListed(names ...string) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.lockOutput()
	defer mgr.unlockOutput()
	for _, name := range names {
		if ctrl, ok := mgr.ctrl[name]; ok {
			ctrl.Paused = true
			delete(mgr.ctrl, name)
		}
	}
}

// StopAll halts playback of all currently playing samples.
func (mgr *Manager) StopAll() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	names := make([]string, 0, len(mgr.ctrl))
	for name := range mgr.ctrl {
		names = append(names, name)
	}
	mgr.mu.Unlock()
	mgr.StopListed(names...)
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	if mgr == nil {
		return
	}
	mgr.StopAll()
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = true
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = false
}

// Muted reports whether output is muted. A nil manager is always muted.
func (mgr *Manager) Muted() bool {
	if mgr == nil {
		return true
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Close stops the backend and frees resources.
func (mgr *Manager) Close() {
	if mgr == nil {
		return
	}
	mgr.closeBackend()
}
