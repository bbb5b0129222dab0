package floor

import (
	"errors"
	"fmt"

	"github.com/vinser/mazegame/internal/collide"
	"github.com/vinser/mazegame/internal/dweller"
)

// ErrInvalidLayout is returned for layouts that cannot be played.
var ErrInvalidLayout = errors.New("invalid layout")

// Floor is a playable arrangement of walls with a player spawn point.
type Floor struct {
	Name       string
	Title      string
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
	Walls      []*dweller.Wall
	Start      dweller.Position
	Speed      dweller.Speed
	Vertical   bool
	Policy     collide.Policy
	wallRects  []dweller.Rect
}

// Validate checks the layout for geometry errors.
func (l *Layout) Validate() error {
	invalid := func(format string, a ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidLayout, fmt.Sprintf(format, a...))
	}
	if l.Cell.Width <= 0 || l.Cell.Height <= 0 {
		return invalid("cell size %dx%d", l.Cell.Width, l.Cell.Height)
	}
	if l.Map.Columns <= 0 || l.Map.Rows <= 0 {
		return invalid("map size %dx%d", l.Map.Columns, l.Map.Rows)
	}
	if l.Player.Speed.Horizontal < 0 || l.Player.Speed.Vertical < 0 {
		return invalid("negative player speed")
	}
	switch l.Axes {
	case AxesHorizontal, AxesBoth:
	default:
		return invalid("axes %q", l.Axes)
	}
	if _, ok := collide.ParsePolicy(l.Policy); !ok {
		return invalid("policy %q", l.Policy)
	}
	if !l.onMap(l.playerSpot()) {
		return invalid("player at %d,%d is off the map", l.Player.Column, l.Player.Row)
	}
	player := l.rect(l.playerSpot())
	for i, w := range l.Walls {
		if !l.onMap(w) {
			return invalid("wall %d at %d,%d is off the map", i, w.Column, w.Row)
		}
		if l.rect(w).Intersects(player) {
			return invalid("wall %d at %d,%d covers the player", i, w.Column, w.Row)
		}
	}
	return nil
}

// playerSpot is the one-cell spawn spot of the player.
func (l *Layout) playerSpot() Spot {
	return Spot{Column: l.Player.Column, Row: l.Player.Row}
}

func (l *Layout) onMap(s Spot) bool {
	cols, rows := s.span()
	return s.Column >= 0 && s.Row >= 0 && cols > 0 && rows > 0 &&
		s.Column+cols <= l.Map.Columns && s.Row+rows <= l.Map.Rows
}

func (l *Layout) rect(s Spot) dweller.Rect {
	cols, rows := s.span()
	return dweller.Rect{
		X: s.Column * l.Cell.Width,
		Y: s.Row * l.Cell.Height,
		W: cols * l.Cell.Width,
		H: rows * l.Cell.Height,
	}
}

// New builds a floor from a validated layout.
func New(l *Layout) *Floor {
	policy, _ := collide.ParsePolicy(l.Policy)
	f := &Floor{
		Name:       l.Name,
		Title:      l.Title,
		CellWidth:  l.Cell.Width,
		CellHeight: l.Cell.Height,
		Columns:    l.Map.Columns,
		Rows:       l.Map.Rows,
		Start:      l.rect(l.playerSpot()).Pos(),
		Speed:      dweller.Speed{Horizontal: l.Player.Speed.Horizontal, Vertical: l.Player.Speed.Vertical},
		Vertical:   l.Axes == AxesBoth,
		Policy:     policy,
	}
	if f.Title == "" {
		f.Title = f.Name
	}
	for _, w := range l.Walls {
		f.Walls = append(f.Walls, dweller.NewWall(l.rect(w)))
	}
	if l.Bounded {
		f.Walls = append(f.Walls, borders(f.Width(), f.Height(), f.CellWidth, f.CellHeight)...)
	}
	for _, w := range f.Walls {
		f.wallRects = append(f.wallRects, w.Bounds())
	}
	return f
}

// borders fences a width x height window with invisible walls just outside it.
func borders(width, height, thickW, thickH int) []*dweller.Wall {
	return []*dweller.Wall{
		dweller.NewBorder(dweller.Rect{X: -thickW, Y: -thickH, W: thickW, H: height + 2*thickH}),
		dweller.NewBorder(dweller.Rect{X: width, Y: -thickH, W: thickW, H: height + 2*thickH}),
		dweller.NewBorder(dweller.Rect{X: 0, Y: -thickH, W: width, H: thickH}),
		dweller.NewBorder(dweller.Rect{X: 0, Y: height, W: width, H: thickH}),
	}
}

// Width returns the window width in pixels.
func (f *Floor) Width() int {
	return f.Columns * f.CellWidth
}

// Height returns the window height in pixels.
func (f *Floor) Height() int {
	return f.Rows * f.CellHeight
}

// Bounds returns the window rectangle.
func (f *Floor) Bounds() dweller.Rect {
	return dweller.Rect{W: f.Width(), H: f.Height()}
}

// WallRects returns the bounding rectangles of all walls, borders included.
// The slice is shared; callers must not modify it.
func (f *Floor) WallRects() []dweller.Rect {
	return f.wallRects
}

// PlacePlayer returns a new player standing on the spawn point.
func (f *Floor) PlacePlayer() *dweller.Player {
	return dweller.NewPlayer(f.Start, f.CellWidth, f.CellHeight, f.Speed)
}
