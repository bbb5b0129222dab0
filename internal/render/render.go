package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/mazegame/internal/style"
)

// Page renders page with title at the top, content block and footer at the bottom.
// Content is vertically centered in the page and keeps its own style.
// With a known terminal size the whole page is centered in the terminal.
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	if w := lipgloss.Width(renderedContent); w > width {
		width = w
	}
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	// Calculate available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)
	centeredContent := renderedContent
	if availableHeight > lipgloss.Height(renderedContent) {
		centeredContent = lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
