package dweller

// Rect is an axis-aligned bounding rectangle in pixels.
// It covers [X, X+W) horizontally and [Y, Y+H) vertically.
type Rect struct {
	X, Y int
	W, H int
}

// RectAt returns a rectangle of size w x h at position p.
func RectAt(p Position, w, h int) Rect {
	return Rect{X: p.X, Y: p.Y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Pos returns the top-left corner.
func (r Rect) Pos() Position {
	return Position{X: r.X, Y: r.Y}
}

// Offset returns the rectangle moved by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and o share any area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return o.Left() < r.Right() && r.Left() < o.Right() &&
		o.Top() < r.Bottom() && r.Top() < o.Bottom()
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}
