package dweller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 64, Y: 64, W: 64, H: 64}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"inside", Rect{X: 80, Y: 80, W: 8, H: 8}, true},
		{"overlap corner", Rect{X: 120, Y: 120, W: 64, H: 64}, true},
		{"touch right edge", Rect{X: 128, Y: 64, W: 64, H: 64}, false},
		{"touch left edge", Rect{X: 0, Y: 64, W: 64, H: 64}, false},
		{"touch top edge", Rect{X: 64, Y: 0, W: 64, H: 64}, false},
		{"touch bottom edge", Rect{X: 64, Y: 128, W: 64, H: 64}, false},
		{"touch corner", Rect{X: 128, Y: 128, W: 64, H: 64}, false},
		{"far away", Rect{X: 512, Y: 512, W: 64, H: 64}, false},
		{"empty", Rect{X: 80, Y: 80}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestRectEdgesAndOffset(t *testing.T) {
	r := RectAt(Position{X: 10, Y: 20}, 30, 40)

	assert.Equal(t, 10, r.Left())
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 20, r.Top())
	assert.Equal(t, 60, r.Bottom())

	moved := r.Offset(-5, 7)
	assert.Equal(t, Position{X: 5, Y: 27}, moved.Pos())
	assert.Equal(t, Position{X: 10, Y: 20}, r.Pos(), "offset must not mutate the receiver")
}

func TestRectContains(t *testing.T) {
	window := Rect{W: 640, H: 512}

	assert.True(t, window.Contains(Rect{X: 576, Y: 448, W: 64, H: 64}))
	assert.False(t, window.Contains(Rect{X: 580, Y: 448, W: 64, H: 64}))
}

func TestPlayer(t *testing.T) {
	p := NewPlayer(Position{X: 128, Y: 448}, 64, 64, Speed{Horizontal: 5, Vertical: 5})

	assert.Equal(t, Right, p.Dir())
	assert.Equal(t, Rect{X: 128, Y: 448, W: 64, H: 64}, p.Bounds())

	p.SetDir(Left)
	p.SetDir(No)
	assert.Equal(t, Left, p.Dir(), "No keeps the current facing")

	p.SetPos(Position{X: 3, Y: 4})
	p.Respawn()
	assert.Equal(t, p.Home(), p.Pos())
	assert.Equal(t, 5, p.Speed().Along(Up))
	assert.Equal(t, 0, p.Speed().Along(No))
}
