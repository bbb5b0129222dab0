// Package collide resolves a single-axis player move against static walls.
package collide

import "github.com/vinser/mazegame/internal/dweller"

// Policy decides what happens when a move would hit a wall.
type Policy int

const (
	// Clamp snaps the player flush against the nearest wall in the way.
	Clamp Policy = iota
	// Block leaves the player where it is.
	Block
)

func (p Policy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Block:
		return "block"
	}
	return "unknown"
}

// ParsePolicy maps a policy name to a Policy.
func ParsePolicy(name string) (Policy, bool) {
	switch name {
	case "clamp":
		return Clamp, true
	case "block":
		return Block, true
	}
	return Clamp, false
}

// Result is the outcome of a resolved move.
type Result struct {
	Pos     dweller.Position
	Blocked bool
	Wall    int // index into walls of the wall that stopped the move, -1 if none
}

// Resolve moves player one step toward dir at the axis speed.
//
// The region tested is the swept rectangle between the current and the
// tentative position, so no speed can carry the player through a wall.
// Walls the player already overlaps are ignored.
func Resolve(player dweller.Rect, dir dweller.Direction, speed dweller.Speed, walls []dweller.Rect, policy Policy) Result {
	res := Result{Pos: player.Pos(), Wall: -1}
	step := speed.Along(dir)
	if dir == dweller.No || step <= 0 {
		return res
	}

	swept, dx, dy := sweep(player, dir, step)
	nearest := -1
	for i, w := range walls {
		if !swept.Intersects(w) || player.Intersects(w) {
			continue
		}
		if nearest < 0 || closer(dir, w, walls[nearest]) {
			nearest = i
		}
	}

	if nearest < 0 {
		res.Pos = res.Pos.Add(dx, dy)
		return res
	}

	res.Blocked = true
	res.Wall = nearest
	if policy == Block {
		return res
	}
	res.Pos = flush(player, dir, walls[nearest])
	return res
}

// Blocked reports whether a move toward dir would hit any wall.
func Blocked(player dweller.Rect, dir dweller.Direction, speed dweller.Speed, walls []dweller.Rect) bool {
	return Resolve(player, dir, speed, walls, Block).Blocked
}

// Overlapping returns the indexes of walls that intersect r.
func Overlapping(r dweller.Rect, walls []dweller.Rect) []int {
	var idx []int
	for i, w := range walls {
		if r.Intersects(w) {
			idx = append(idx, i)
		}
	}
	return idx
}

// sweep returns the rectangle covering the move and the move offset.
func sweep(r dweller.Rect, dir dweller.Direction, step int) (dweller.Rect, int, int) {
	switch dir {
	case dweller.Right:
		r.W += step
		return r, step, 0
	case dweller.Left:
		r.X -= step
		r.W += step
		return r, -step, 0
	case dweller.Down:
		r.H += step
		return r, 0, step
	case dweller.Up:
		r.Y -= step
		r.H += step
		return r, 0, -step
	}
	return r, 0, 0
}

// closer reports whether wall a stops a move toward dir before wall b does.
func closer(dir dweller.Direction, a, b dweller.Rect) bool {
	switch dir {
	case dweller.Right:
		return a.Left() < b.Left()
	case dweller.Left:
		return a.Right() > b.Right()
	case dweller.Down:
		return a.Top() < b.Top()
	case dweller.Up:
		return a.Bottom() > b.Bottom()
	}
	return false
}

// flush returns the player position touching the near edge of wall.
func flush(player dweller.Rect, dir dweller.Direction, wall dweller.Rect) dweller.Position {
	pos := player.Pos()
	switch dir {
	case dweller.Right:
		pos.X = wall.Left() - player.W
	case dweller.Left:
		pos.X = wall.Right()
	case dweller.Down:
		pos.Y = wall.Top() - player.H
	case dweller.Up:
		pos.Y = wall.Bottom()
	}
	return pos
}
