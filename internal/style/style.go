package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/mazegame/internal/dweller"
)

var (
	// Scene
	Floor  = lipgloss.NewStyle().Background(lipgloss.Color(Cornflower.Hex()))
	Wall   = lipgloss.NewStyle().Foreground(lipgloss.Color(Brick.Hex())).Background(lipgloss.Color(Mortar.Hex()))
	Player = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color(Cornflower.Hex())).Bold(true) // Bright yellow
	Bumped = Player.Foreground(lipgloss.Color("9"))                                                                        // Bright red

	PlayHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Flash      = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Scene glyphs
const (
	FloorGlyph = ' '
	WallGlyph  = '▒'
)

// PlayerGlyph returns the glyph of a player facing d.
func PlayerGlyph(d dweller.Direction) rune {
	switch d {
	case dweller.Left:
		return '◀'
	case dweller.Up:
		return '▲'
	case dweller.Down:
		return '▼'
	case dweller.Right:
		return '▶'
	}
	return '█'
}

type RGB struct {
	R int
	G int
	B int
}

var (
	Cornflower = RGB{100, 149, 237}
	Brick      = RGB{178, 34, 34}
	Mortar     = RGB{110, 40, 30}
)

// Hex formats the color as #RRGGBB.
func (c RGB) Hex() string {
	return GenerateHexColor(c.R, c.G, c.B)
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

func clamp(c int) int {
	return max(0, min(255, c))
}
