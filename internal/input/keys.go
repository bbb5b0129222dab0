// Package input turns terminal key events into per-frame game actions.
package input

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Key is a logical game key.
type Key uint8

const (
	KeyRight Key = iota
	KeyLeft
	KeyUp
	KeyDown
	KeyEscape
	keyCount
)

// KeyMap binds terminal keys to game keys.
type KeyMap struct {
	Right  key.Binding
	Left   key.Binding
	Up     key.Binding
	Down   key.Binding
	Escape key.Binding

	// Respawn is handled outside the per-frame mapping.
	Respawn key.Binding
}

// DefaultKeyMap returns arrows, WASD and vi keys for movement, r to respawn and esc to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Right:  key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→", "right")),
		Left:   key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←", "left")),
		Up:     key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓", "down")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),

		Respawn: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "respawn")),
	}
}

// HorizontalOnly disables the vertical bindings.
func (km KeyMap) HorizontalOnly() KeyMap {
	km.Up.SetEnabled(false)
	km.Down.SetEnabled(false)
	return km
}

// Lookup returns the game key bound to msg.
func (km KeyMap) Lookup(msg tea.KeyMsg) (Key, bool) {
	switch {
	case key.Matches(msg, km.Right):
		return KeyRight, true
	case key.Matches(msg, km.Left):
		return KeyLeft, true
	case key.Matches(msg, km.Up):
		return KeyUp, true
	case key.Matches(msg, km.Down):
		return KeyDown, true
	case key.Matches(msg, km.Escape):
		return KeyEscape, true
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Up, km.Down, km.Respawn, km.Escape}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Left, km.Right}, {km.Up, km.Down}, {km.Respawn, km.Escape}}
}

// State is the set of keys held during one frame.
type State uint8

// IsDown reports whether k is held.
func (s State) IsDown(k Key) bool {
	return s&(1<<k) != 0
}

// With returns the state with k held.
func (s State) With(k Key) State {
	return s | 1<<k
}

// DefaultHold is how long a key counts as held between two auto-repeats.
// Terminals send auto-repeat presses but no releases, so a held key is one
// that keeps repeating within this window.
const DefaultHold = 150 * time.Millisecond

// DefaultFirstHold covers the gap between a fresh press and its first
// auto-repeat, which terminals delay by 250 to 660 ms.
const DefaultFirstHold = 700 * time.Millisecond

// Keyboard tracks key presses and answers which keys are down at a given time.
type Keyboard struct {
	hold      time.Duration
	firstHold time.Duration
	lastPress [keyCount]time.Time
	repeating [keyCount]bool
}

// NewKeyboard returns a keyboard with the given hold window between repeats.
func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{hold: hold, firstHold: max(hold, DefaultFirstHold)}
}

// Press records a press (or auto-repeat) of k at the given time.
// A press that arrives while k is still held is an auto-repeat.
func (kb *Keyboard) Press(k Key, at time.Time) {
	if k >= keyCount {
		return
	}
	kb.repeating[k] = kb.isDown(k, at)
	kb.lastPress[k] = at
}

// Release forgets k immediately.
func (kb *Keyboard) Release(k Key) {
	if k < keyCount {
		kb.lastPress[k] = time.Time{}
		kb.repeating[k] = false
	}
}

// Reset releases every key.
func (kb *Keyboard) Reset() {
	kb.lastPress = [keyCount]time.Time{}
	kb.repeating = [keyCount]bool{}
}

// State returns the keys held at now.
func (kb *Keyboard) State(now time.Time) State {
	var s State
	for k := Key(0); k < keyCount; k++ {
		if kb.isDown(k, now) {
			s = s.With(k)
		}
	}
	return s
}

func (kb *Keyboard) isDown(k Key, now time.Time) bool {
	at := kb.lastPress[k]
	if at.IsZero() || at.After(now) {
		return false
	}
	window := kb.firstHold
	if kb.repeating[k] {
		window = kb.hold
	}
	return now.Sub(at) < window
}
