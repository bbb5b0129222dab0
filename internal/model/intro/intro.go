package intro

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/mazegame/internal/render"
	"github.com/vinser/mazegame/internal/style"
)

const introPeriod = 3 * time.Second

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	title      string
	controls   string
	introUntil time.Time
}

// TickMsg is a tick message.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// StartMsg asks to begin the game, either on timeout or on enter.
type StartMsg struct{}

func startCmd() tea.Cmd {
	return func() tea.Msg {
		return StartMsg{}
	}
}

// QuitMsg asks to leave before the game starts.
type QuitMsg struct{}

func quitCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitMsg{}
	}
}

// AboutMsg asks to show the about page.
type AboutMsg struct{}

func aboutCmd() tea.Cmd {
	return func() tea.Msg {
		return AboutMsg{}
	}
}

// New returns the title screen for a build. Controls names the keys the build listens to.
func New(title, controls string, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:      width,
		height:     height,
		title:      title,
		controls:   controls,
		introUntil: time.Now().Add(introPeriod),
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
		switch msg.String() {
		case "enter", " ":
			return m, startCmd()
		case "?":
			return m, aboutCmd()
		case "esc":
			return m, quitCmd()
		}
		return m, nil
	case TickMsg:
		if time.Time(msg).After(m.introUntil) {
			return m, startCmd()
		}
		return m, tick()
	}
	return m, nil
}

const footer = "enter start, ? about, esc quit"

func (m Model) View() string {
	var flash string
	if (time.Now().UnixNano()/int64(time.Millisecond)/500)%2 == 0 {
		flash = style.Flash.Render(m.title)
	}
	return render.Page("Maze Game", m.renderContent(flash), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent(flash string) string {
	return fmt.Sprintf("\n%s\n\n%s\n\nGet ready...\n", flash, m.controls)
}
