//go:build !linux
// +build !linux

package sound

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

type pulseControl struct{}

// initBackend initializes the default beep speaker backend.
func (mgr *Manager) initBackend(sampleRate beep.SampleRate, bufferSize int) error {
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return err
	}
	speaker.Play(endless(mgr.vol))
	mgr.backend = sampleRate
	return nil
}

// lockOutput keeps the speaker goroutine off the mixer while it changes.
func (mgr *Manager) lockOutput() {
	if mgr.backend != nil {
		speaker.Lock()
	}
}

func (mgr *Manager) unlockOutput() {
	if mgr.backend != nil {
		speaker.Unlock()
	}
}

// closeBackend shuts down the speaker backend.
func (mgr *Manager) closeBackend() {
	if mgr.backend != nil {
		speaker.Clear()
	}
}
