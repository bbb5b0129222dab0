package input

import "github.com/vinser/mazegame/internal/dweller"

// Action is what the player asked for in one frame.
type Action int

const (
	None Action = iota
	PlayerRight
	PlayerLeft
	PlayerUp
	PlayerDown
	Quit
)

func (a Action) String() string {
	switch a {
	case PlayerRight:
		return "right"
	case PlayerLeft:
		return "left"
	case PlayerUp:
		return "up"
	case PlayerDown:
		return "down"
	case Quit:
		return "quit"
	}
	return "none"
}

// Direction returns the movement direction of a move action.
func (a Action) Direction() dweller.Direction {
	switch a {
	case PlayerRight:
		return dweller.Right
	case PlayerLeft:
		return dweller.Left
	case PlayerUp:
		return dweller.Up
	case PlayerDown:
		return dweller.Down
	}
	return dweller.No
}

// priority lists keys in the order they win when several are held.
var priority = []struct {
	key    Key
	action Action
}{
	{KeyRight, PlayerRight},
	{KeyLeft, PlayerLeft},
	{KeyUp, PlayerUp},
	{KeyDown, PlayerDown},
	{KeyEscape, Quit},
}

// Mapper picks one action per frame from the keys held.
type Mapper struct {
	// Vertical enables up and down moves.
	Vertical bool
	// Tap makes a key act only on the frame it goes down.
	Tap bool

	prev State
}

// NewMapper returns a level-triggered mapper.
func NewMapper(vertical bool) *Mapper {
	return &Mapper{Vertical: vertical}
}

// Action returns the first matching action in priority order
// Right, Left, Up, Down, Escape, or None.
func (m *Mapper) Action(s State) Action {
	prev := m.prev
	m.prev = s
	for _, p := range priority {
		if !m.Vertical && (p.key == KeyUp || p.key == KeyDown) {
			continue
		}
		if !s.IsDown(p.key) {
			continue
		}
		if m.Tap && prev.IsDown(p.key) {
			continue
		}
		return p.action
	}
	return None
}

// Reset forgets the previous frame.
func (m *Mapper) Reset() {
	m.prev = 0
}
