package flags

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrInvalidValue is wrapped by every validation error returned from Parse.
var ErrInvalidValue = errors.New("invalid flag value")

const (
	DefaultLayout = "block"
	DefaultFPS    = 30
	MaxFPS        = 120
)

// Flags stores the parsed command-line options
type Flags struct {
	Layout   string
	Config   string
	Policy   string
	Sprite   string
	FPS      int
	Hold     time.Duration
	Tap      bool
	Mute     bool
	LogFile  string
	LogLevel string

	fsv *FlagSetWithVisit
}

// IsCustom reports whether the named long flag was given on the command line.
func (f *Flags) IsCustom(name string) bool {
	return f.fsv != nil && f.fsv.IsCustom(name)
}

// Frame returns the interval between two frames.
func (f *Flags) Frame() time.Duration {
	return time.Second / time.Duration(f.FPS)
}

// Parse parses args (without the program name) and returns the resulting config.
// Usage and parse errors are written to out.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	fl := &Flags{}
	fsv := NewFlagSetWithVisit(name, out)
	fl.fsv = fsv

	fsv.StringVar(&fl.Layout, "layout", "l", DefaultLayout, "Built-in layout: corridor or block")
	fsv.StringVar(&fl.Config, "config", "c", "", "Load the layout from a YAML file instead")
	fsv.StringVar(&fl.Policy, "policy", "p", "", "Collision policy: clamp or block (default from layout)")
	fsv.StringVar(&fl.Sprite, "sprite-size", "s", "large", "Sprite size: small, medium, or large")
	fsv.IntVar(&fl.FPS, "fps", "f", DefaultFPS, "Frames per second")
	fsv.DurationVar(&fl.Hold, "hold", "", 150*time.Millisecond, "How long a key counts as held between auto-repeats")
	fsv.BoolVar(&fl.Tap, "tap", "t", false, "Move once per key press instead of every frame")
	fsv.BoolVar(&fl.Mute, "mute", "m", false, "Mute all sounds")
	fsv.StringVar(&fl.LogFile, "log", "", "", "Write logs to this file")
	fsv.StringVar(&fl.LogLevel, "log-level", "", "info", "Log level: debug, info, warn, or error")

	if err := fsv.Parse(args); err != nil {
		return nil, err
	}
	if err := fl.normalize(); err != nil {
		fsv.Usage()
		return nil, err
	}
	return fl, nil
}

func (f *Flags) normalize() error {
	f.Layout = strings.ToLower(f.Layout)
	f.Policy = strings.ToLower(f.Policy)
	f.Sprite = strings.ToLower(f.Sprite)
	f.LogLevel = strings.ToLower(f.LogLevel)

	if f.Config != "" && f.IsCustom("layout") {
		return fmt.Errorf("%w: -layout and -config are mutually exclusive", ErrInvalidValue)
	}
	if !oneOf(f.Layout, "corridor", "block") && f.Config == "" {
		return fmt.Errorf("%w: layout %q, use 'corridor' or 'block'", ErrInvalidValue, f.Layout)
	}
	if f.Policy != "" && !oneOf(f.Policy, "clamp", "block") {
		return fmt.Errorf("%w: policy %q, use 'clamp' or 'block'", ErrInvalidValue, f.Policy)
	}
	if !oneOf(f.Sprite, "small", "medium", "large") {
		return fmt.Errorf("%w: sprite size %q, use 'small', 'medium' or 'large'", ErrInvalidValue, f.Sprite)
	}
	if f.FPS < 1 || f.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d, must be between 1 and %d", ErrInvalidValue, f.FPS, MaxFPS)
	}
	if f.Hold <= 0 {
		return fmt.Errorf("%w: hold %s, must be positive", ErrInvalidValue, f.Hold)
	}
	if !oneOf(f.LogLevel, "debug", "info", "warn", "error") {
		return fmt.Errorf("%w: log level %q", ErrInvalidValue, f.LogLevel)
	}
	return nil
}

func oneOf(s string, values ...string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}
