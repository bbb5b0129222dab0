// Package about shows the embedded help page.
package about

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/mazegame/internal/embeddata"
	"github.com/vinser/mazegame/internal/render"
)

// chrome is the number of page lines around the viewport: pattern, title, footer and margins.
const chrome = 5

const footer = "↑ ↓ scroll, esc back, ctrl+c quit"

type Model struct {
	width, height         int // page size
	termWidth, termHeight int
	viewport              viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

// New renders the embedded about page into a scrollable viewport of the given page size.
func New(width, height int) (Model, error) {
	width = max(width, lipgloss.Width(footer))
	md, err := embeddata.ReadAboutMD()
	if err != nil {
		return Model{}, fmt.Errorf("read about page: %w", err)
	}

	vp := viewport.New(width, height)
	vp.SetContent(markdown(string(md), width-2))
	return Model{width: width, height: height, viewport: vp}, nil
}

// SetSize fits the viewport into the terminal, never beyond the page height.
func (m *Model) SetSize(termWidth, termHeight int) {
	m.termWidth, m.termHeight = termWidth, termHeight
	m.viewport.Height = max(min(m.height, termHeight-chrome), 1)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter":
			return m, closeAboutCmd()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return render.Page("About", m.viewport.View(), footer, m.width, m.viewport.Height, m.termWidth, m.termHeight)
}

// markdown renders md for the terminal, falling back to the raw text.
func markdown(md string, wrap int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
