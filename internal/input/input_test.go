package input

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/vinser/mazegame/internal/dweller"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Key
		ok   bool
	}{
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, KeyRight, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, KeyLeft, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, KeyUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, KeyDown, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, KeyEscape, true},
		{"wasd", runeKey('a'), KeyLeft, true},
		{"vi", runeKey('j'), KeyDown, true},
		{"unbound", runeKey('x'), 0, false},
		{"respawn is not a game key", runeKey('r'), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Lookup(tt.msg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKeyMapHorizontalOnly(t *testing.T) {
	km := DefaultKeyMap().HorizontalOnly()

	_, ok := km.Lookup(tea.KeyMsg{Type: tea.KeyUp})
	assert.False(t, ok)
	k, ok := km.Lookup(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, ok)
	assert.Equal(t, KeyRight, k)

	full := DefaultKeyMap()
	_, ok = full.Lookup(tea.KeyMsg{Type: tea.KeyUp})
	assert.True(t, ok, "disabling a copy must not touch the default map")
}

func TestKeyboardHold(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }
	kb := NewKeyboard(100 * time.Millisecond)

	kb.Press(KeyRight, start)
	assert.True(t, kb.State(start).IsDown(KeyRight))
	assert.True(t, kb.State(at(650)).IsDown(KeyRight), "waiting for the first auto-repeat")
	assert.False(t, kb.State(at(700)).IsDown(KeyRight))

	// the first auto-repeat switches to the short window
	kb.Press(KeyRight, at(500))
	assert.True(t, kb.State(at(599)).IsDown(KeyRight))
	assert.False(t, kb.State(at(600)).IsDown(KeyRight))

	kb.Press(KeyRight, at(590))
	assert.True(t, kb.State(at(650)).IsDown(KeyRight))

	kb.Release(KeyRight)
	assert.Equal(t, State(0), kb.State(at(650)))
}

func TestKeyboardFreshPressAfterRelease(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	kb := NewKeyboard(100 * time.Millisecond)

	kb.Press(KeyLeft, start)
	kb.Press(KeyLeft, start.Add(400*time.Millisecond))
	// the key went up; the next press waits for its own first repeat
	next := start.Add(2 * time.Second)
	kb.Press(KeyLeft, next)
	assert.True(t, kb.State(next.Add(400*time.Millisecond)).IsDown(KeyLeft))
}

func TestKeyboardFirstHoldNotShorterThanHold(t *testing.T) {
	kb := NewKeyboard(time.Second)
	assert.Equal(t, time.Second, kb.firstHold)
	assert.Equal(t, DefaultFirstHold, NewKeyboard(0).firstHold)
}

func TestKeyboardReset(t *testing.T) {
	now := time.Now()
	kb := NewKeyboard(0)
	kb.Press(KeyLeft, now)
	kb.Press(KeyEscape, now)

	s := kb.State(now)
	assert.True(t, s.IsDown(KeyLeft))
	assert.True(t, s.IsDown(KeyEscape))
	assert.False(t, s.IsDown(KeyRight))

	kb.Reset()
	assert.Equal(t, State(0), kb.State(now))
}

func held(keys ...Key) State {
	var s State
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func TestMapperPriority(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		vertical bool
		want     Action
	}{
		{"nothing", held(), true, None},
		{"right", held(KeyRight), true, PlayerRight},
		{"right beats left", held(KeyLeft, KeyRight), true, PlayerRight},
		{"left beats up", held(KeyUp, KeyLeft), true, PlayerLeft},
		{"up beats down", held(KeyDown, KeyUp), true, PlayerUp},
		{"down beats escape", held(KeyEscape, KeyDown), true, PlayerDown},
		{"escape", held(KeyEscape), true, Quit},
		{"all keys", held(KeyEscape, KeyDown, KeyUp, KeyLeft, KeyRight), true, PlayerRight},
		{"up ignored when horizontal", held(KeyUp), false, None},
		{"escape wins over ignored down", held(KeyDown, KeyEscape), false, Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper(tt.vertical)
			assert.Equal(t, tt.want, m.Action(tt.state))
		})
	}
}

func TestMapperRepeatsWhileHeld(t *testing.T) {
	m := NewMapper(true)
	for i := 0; i < 5; i++ {
		assert.Equal(t, PlayerDown, m.Action(held(KeyDown)))
	}
}

func TestMapperTap(t *testing.T) {
	m := NewMapper(true)
	m.Tap = true

	assert.Equal(t, PlayerLeft, m.Action(held(KeyLeft)))
	assert.Equal(t, None, m.Action(held(KeyLeft)))
	assert.Equal(t, PlayerUp, m.Action(held(KeyLeft, KeyUp)), "a newly pressed key still acts")
	assert.Equal(t, None, m.Action(held()))
	assert.Equal(t, PlayerLeft, m.Action(held(KeyLeft)))

	m.Reset()
	assert.Equal(t, PlayerLeft, m.Action(held(KeyLeft)))
}

func TestActionDirection(t *testing.T) {
	assert.Equal(t, dweller.Right, PlayerRight.Direction())
	assert.Equal(t, dweller.Left, PlayerLeft.Direction())
	assert.Equal(t, dweller.Up, PlayerUp.Direction())
	assert.Equal(t, dweller.Down, PlayerDown.Direction())
	assert.Equal(t, dweller.No, Quit.Direction())
	assert.Equal(t, dweller.No, None.Direction())
	assert.Equal(t, "quit", Quit.String())
}
