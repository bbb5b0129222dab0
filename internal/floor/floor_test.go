package floor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/mazegame/internal/collide"
	"github.com/vinser/mazegame/internal/dweller"
)

func TestBuiltin(t *testing.T) {
	assert.Equal(t, []string{"block", "corridor"}, Builtin())
}

func TestLoadCorridor(t *testing.T) {
	l, err := Load("Corridor")
	require.NoError(t, err)
	f := New(l)

	assert.Equal(t, "corridor", f.Name)
	assert.Equal(t, 640, f.Width())
	assert.Equal(t, 512, f.Height())
	assert.Equal(t, dweller.Position{X: 128, Y: 448}, f.Start)
	assert.Equal(t, dweller.Speed{Horizontal: 5, Vertical: 5}, f.Speed)
	assert.False(t, f.Vertical)
	assert.Equal(t, collide.Block, f.Policy)

	require.Len(t, f.Walls, 6, "two walls and four borders")
	assert.Equal(t, dweller.Rect{X: 0, Y: 448, W: 64, H: 64}, f.Walls[0].Bounds())
	assert.Equal(t, dweller.Rect{X: 576, Y: 448, W: 64, H: 64}, f.Walls[1].Bounds())
	assert.True(t, f.Walls[0].Visible())
	assert.False(t, f.Walls[5].Visible())
	assert.Len(t, f.WallRects(), 6)
}

func TestLoadBlock(t *testing.T) {
	l, err := Load("block")
	require.NoError(t, err)
	f := New(l)

	assert.Equal(t, 576, f.Width())
	assert.Equal(t, 576, f.Height())
	assert.Equal(t, dweller.Position{X: 128, Y: 128}, f.Start)
	assert.True(t, f.Vertical)
	assert.Equal(t, collide.Clamp, f.Policy)
	assert.Equal(t, dweller.Rect{X: 256, Y: 256, W: 64, H: 64}, f.Walls[0].Bounds())

	p := f.PlacePlayer()
	assert.Equal(t, dweller.Rect{X: 128, Y: 128, W: 64, H: 64}, p.Bounds())
	assert.Equal(t, 10, p.Speed().Horizontal)
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("labyrinth")
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestBordersKeepPlayerInside(t *testing.T) {
	l, err := Load("block")
	require.NoError(t, err)
	f := New(l)
	p := f.PlacePlayer()

	for _, dir := range []dweller.Direction{dweller.Up, dweller.Left, dweller.Down, dweller.Right} {
		for i := 0; i < 100; i++ {
			res := collide.Resolve(p.Bounds(), dir, p.Speed(), f.WallRects(), f.Policy)
			p.SetPos(res.Pos)
			require.True(t, f.Bounds().Contains(p.Bounds()), "%s step %d: %+v", dir, i, p.Bounds())
		}
	}
}

const minimal = `
name: test
cell: {width: 32, height: 16}
map: {columns: 4, rows: 3}
player: {column: 0, row: 0, speed: {horizontal: 2, vertical: 1}}
walls:
  - {column: 2, row: 1, columns: 2}
`

func TestParseDefaults(t *testing.T) {
	l, err := Parse([]byte(minimal))
	require.NoError(t, err)
	assert.Equal(t, AxesBoth, l.Axes)
	assert.Equal(t, "clamp", l.Policy)

	f := New(l)
	assert.Equal(t, "test", f.Title)
	require.Len(t, f.Walls, 1, "no borders unless bounded")
	assert.Equal(t, dweller.Rect{X: 64, Y: 16, W: 64, H: 16}, f.Walls[0].Bounds())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "cell: [1, 2"},
		{"unknown field", minimal + "\ncolour: red\n"},
		{"zero cell", "cell: {width: 0, height: 16}\nmap: {columns: 4, rows: 3}\n"},
		{"zero map", "cell: {width: 8, height: 8}\nmap: {columns: 0, rows: 3}\n"},
		{"negative speed", "cell: {width: 8, height: 8}\nmap: {columns: 4, rows: 3}\nplayer: {speed: {horizontal: -1}}\n"},
		{"bad axes", "cell: {width: 8, height: 8}\nmap: {columns: 4, rows: 3}\naxes: diagonal\n"},
		{"bad policy", "cell: {width: 8, height: 8}\nmap: {columns: 4, rows: 3}\npolicy: bounce\n"},
		{"player off map", "cell: {width: 8, height: 8}\nmap: {columns: 4, rows: 3}\nplayer: {column: 4}\n"},
		{"wall off map", "cell: {width: 8, height: 8}\nmap: {columns: 4, rows: 3}\nplayer: {column: 0}\nwalls: [{column: 3, row: 2, rows: 2}]\n"},
		{"wall on player", "cell: {width: 8, height: 8}\nmap: {columns: 4, rows: 3}\nplayer: {column: 1, row: 1}\nwalls: [{column: 0, row: 0, columns: 2, rows: 2}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o644))

	l, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test", l.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
