package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/mazegame/internal/dweller"
	"github.com/vinser/mazegame/internal/floor"
	"github.com/vinser/mazegame/internal/style"
)

// Sprite sizes
const (
	SpriteSmall   = "small"
	SpriteMedium  = "medium"
	SpriteLarge   = "large"
	SpriteDefault = SpriteLarge
)

// SpriteChars returns (tileWidthChars, tileHeightRows) for a sprite size.
func SpriteChars(size string) (int, int) {
	switch size {
	case SpriteSmall:
		return 1, 1
	case SpriteMedium:
		return 2, 1
	case SpriteLarge:
		return 4, 2
	default:
		return 2, 1
	}
}

type kind uint8

const (
	kindFloor kind = iota
	kindWall
	kindPlayer
)

// Scene maps the pixel space of a floor onto terminal characters.
// A character shows whatever covers the pixel at its center; the player
// is drawn over walls.
type Scene struct {
	Floor  *floor.Floor
	Player *dweller.Player
	Bumped bool
	CharsW int // characters per map cell horizontally
	CharsH int // rows per map cell
}

// NewScene returns a scene drawn with the given sprite size.
func NewScene(f *floor.Floor, p *dweller.Player, spriteSize string) Scene {
	w, h := SpriteChars(spriteSize)
	return Scene{Floor: f, Player: p, CharsW: w, CharsH: h}
}

// Size returns the scene size in characters and rows.
func (s Scene) Size() (int, int) {
	return s.Floor.Columns * s.CharsW, s.Floor.Rows * s.CharsH
}

// center returns the pixel at the center of character cx, cy.
func (s Scene) center(cx, cy int) dweller.Rect {
	x := (2*cx + 1) * s.Floor.CellWidth / (2 * s.CharsW)
	y := (2*cy + 1) * s.Floor.CellHeight / (2 * s.CharsH)
	return dweller.Rect{X: x, Y: y, W: 1, H: 1}
}

func (s Scene) kinds() [][]kind {
	cols, rows := s.Size()
	player := s.Player.Bounds()
	grid := make([][]kind, rows)
	for cy := range grid {
		grid[cy] = make([]kind, cols)
		for cx := range grid[cy] {
			px := s.center(cx, cy)
			if px.Intersects(player) {
				grid[cy][cx] = kindPlayer
				continue
			}
			for _, w := range s.Floor.Walls {
				if w.Visible() && px.Intersects(w.Bounds()) {
					grid[cy][cx] = kindWall
					break
				}
			}
		}
	}
	return grid
}

func (s Scene) glyph(k kind) rune {
	switch k {
	case kindWall:
		return style.WallGlyph
	case kindPlayer:
		return style.PlayerGlyph(s.Player.Dir())
	}
	return style.FloorGlyph
}

func (s Scene) style(k kind) lipgloss.Style {
	switch k {
	case kindWall:
		return style.Wall
	case kindPlayer:
		if s.Bumped {
			return style.Bumped
		}
		return style.Player
	}
	return style.Floor
}

// Lines returns the unstyled scene, one string per row.
func (s Scene) Lines() []string {
	grid := s.kinds()
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, k := range row {
			b.WriteRune(s.glyph(k))
		}
		lines[y] = b.String()
	}
	return lines
}

// Render returns the styled scene, each row left-padded by pad spaces.
func (s Scene) Render(pad int) string {
	var sb strings.Builder
	padding := strings.Repeat(" ", max(pad, 0))
	for _, row := range s.kinds() {
		sb.WriteString(padding)
		// Style runs of equal kind at once.
		for start := 0; start < len(row); {
			end := start
			for end < len(row) && row[end] == row[start] {
				end++
			}
			sb.WriteString(s.style(row[start]).Render(strings.Repeat(string(s.glyph(row[start])), end-start)))
			start = end
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
