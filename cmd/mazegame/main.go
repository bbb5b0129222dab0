package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vinser/mazegame/internal/app"
	"github.com/vinser/mazegame/internal/collide"
	"github.com/vinser/mazegame/internal/flags"
	"github.com/vinser/mazegame/internal/floor"
	"github.com/vinser/mazegame/internal/model/play"
	"github.com/vinser/mazegame/internal/sound"
)

var version = "dev"

func main() {
	fl, err := flags.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(fl.LogFile, fl.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer closeLog()

	f, err := loadFloor(fl)
	if err != nil {
		logger.Error("load layout", "err", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.Info("starting", "version", version, "layout", f.Name, "policy", f.Policy, "fps", fl.FPS, "sprite", fl.Sprite)

	sm := newSound(logger, fl.Mute)
	defer sm.Close()

	cfg := app.Config{
		Floor:  f,
		Sound:  sm,
		Logger: logger,
		Play: play.Options{
			SpriteSize: fl.Sprite,
			Frame:      fl.Frame(),
			Hold:       fl.Hold,
			Tap:        fl.Tap,
		},
	}
	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program", "err", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}

// newLogger writes to path, or nowhere when path is empty, since the terminal belongs to the game.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = file
		closeFn = func() { file.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger.With("session", uuid.NewString()), closeFn, nil
}

func loadFloor(fl *flags.Flags) (*floor.Floor, error) {
	var (
		l   *floor.Layout
		err error
	)
	if fl.Config != "" {
		l, err = floor.LoadFile(fl.Config)
	} else {
		l, err = floor.Load(fl.Layout)
	}
	if err != nil {
		return nil, err
	}
	f := floor.New(l)
	if fl.Policy != "" {
		policy, ok := collide.ParsePolicy(fl.Policy)
		if !ok {
			return nil, fmt.Errorf("%w: policy %q", flags.ErrInvalidValue, fl.Policy)
		}
		f.Policy = policy
	}
	return f, nil
}

// newSound never fails: without an audio device the game runs muted.
func newSound(logger *log.Logger, mute bool) *sound.Manager {
	sm, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	if err := sm.LoadSamples(); err != nil {
		logger.Warn("sound disabled", "err", err)
		sm.Close()
		return nil
	}
	if mute {
		sm.Mute()
	}
	return sm
}
