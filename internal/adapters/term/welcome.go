package term

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ShowWelcome types the title out character by character in the middle
// of the screen, holds it briefly, then clears for the main UI.
func (s *Screen) ShowWelcome(title, color string, charDelay, holdDelay time.Duration) {
	row := s.height / 2
	col := (s.width-ansi.StringWidth(title))/2 + 1

	s.clear()
	s.moveTo(row, col)
	s.showCursor()
	s.flush()

	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	for i, r := range title {
		s.writeAt(row, col+i, style.Render(string(r)))
		s.flush()
		time.Sleep(charDelay)
	}
	time.Sleep(holdDelay)

	s.hideCursor()
	s.clear()
	s.flush()
}
