package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/mazegame/internal/render"
)

const quitPeriod = 1500 * time.Millisecond

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	frames    int
	quitUntil time.Time
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// New returns the farewell screen. Frames is how many frames were played.
func New(frames, width, height int) Model {
	return Model{
		width:     width,
		height:    height,
		frames:    frames,
		quitUntil: time.Now().Add(quitPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Any key skips the farewell.
		return m, tea.Quit
	case TickMsg:
		if time.Time(msg).After(m.quitUntil) {
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	content := "\nBye!\n"
	if m.frames > 0 {
		content = fmt.Sprintf("\nYou walked for %d frames.\nBye!\n", m.frames)
	}
	return render.Page("Leaving the maze", content, "", m.width, m.height, m.termWidth, m.termHeight)
}
