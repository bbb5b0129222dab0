package dweller

// Wall is a static obstacle. It never changes after placement.
type Wall struct {
	bounds  Rect
	visible bool
}

// NewWall places a visible wall covering r.
func NewWall(r Rect) *Wall {
	return &Wall{bounds: r, visible: true}
}

// NewBorder places an invisible wall, used to fence the window edges.
func NewBorder(r Rect) *Wall {
	return &Wall{bounds: r}
}

// Bounds returns the wall's bounding rectangle.
func (w *Wall) Bounds() Rect {
	return w.bounds
}

// Visible reports whether the wall is drawn.
func (w *Wall) Visible() bool {
	return w.visible
}
