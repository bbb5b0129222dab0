package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/mazegame/internal/dweller"
	"github.com/vinser/mazegame/internal/floor"
)

func corridor(t *testing.T) *floor.Floor {
	t.Helper()
	l, err := floor.Load("corridor")
	require.NoError(t, err)
	return floor.New(l)
}

func TestSceneSmall(t *testing.T) {
	f := corridor(t)
	s := NewScene(f, f.PlacePlayer(), SpriteSmall)

	cols, rows := s.Size()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 8, rows)

	lines := s.Lines()
	require.Len(t, lines, 8)
	assert.Equal(t, strings.Repeat(" ", 10), lines[0])
	assert.Equal(t, "▒ ▶      ▒", lines[7])
}

func TestSceneLargeSubCellMove(t *testing.T) {
	f := corridor(t)
	p := f.PlacePlayer()
	p.SetDir(dweller.Left)
	p.SetPos(dweller.Position{X: 64, Y: 448})
	s := NewScene(f, p, SpriteLarge)

	lines := s.Lines()
	require.Len(t, lines, 16)
	assert.Equal(t, "▒▒▒▒◀◀◀◀"+strings.Repeat(" ", 28)+"▒▒▒▒", lines[14])
	assert.Equal(t, lines[14], lines[15])

	// a quarter cell is one character at large size
	p.SetPos(dweller.Position{X: 80, Y: 448})
	assert.Equal(t, "▒▒▒▒ ◀◀◀◀"+strings.Repeat(" ", 27)+"▒▒▒▒", s.Lines()[14])
}

func TestSpriteChars(t *testing.T) {
	w, h := SpriteChars(SpriteLarge)
	assert.Equal(t, []int{4, 2}, []int{w, h})
	w, h = SpriteChars("huge")
	assert.Equal(t, []int{2, 1}, []int{w, h})
}

func TestSceneRenderPads(t *testing.T) {
	f := corridor(t)
	out := NewScene(f, f.PlacePlayer(), SpriteSmall).Render(3)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "   "))
	}
	assert.Contains(t, out, "▶")
}

func TestPage(t *testing.T) {
	out := Page("Title", "content", "footer", 20, 10, 0, 0)

	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "content")
	assert.Contains(t, out, "footer")
	assert.Contains(t, out, strings.Repeat("/", 20))
}
