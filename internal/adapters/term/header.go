package term

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jdhalbert/tomodoro/internal/domain"
)

// Section is one bordered box in the header row.
type Section struct {
	Text  string
	Color string
	Bold  bool
}

// Header draws a centered row of bordered sections at the top of the
// screen. Section texts set at construction fix the box widths, so an
// override may restyle a section but never shifts its neighbours.
type Header struct {
	screen      *Screen
	sections    []Section
	original    []Section
	cols        []int
	borderColor string
}

// NewHeader lays out the sections and draws them. It fails when the
// combined width of all boxes does not fit the terminal.
func NewHeader(screen *Screen, borderColor string, sections ...Section) (*Header, error) {
	total := 0
	for _, sec := range sections {
		// text width + two border cells + two padding cells per box
		total += ansi.StringWidth(sec.Text) + 4
	}
	if total > screen.width-2 {
		return nil, domain.ErrHeaderTooWide
	}

	h := &Header{
		screen:      screen,
		sections:    append([]Section(nil), sections...),
		original:    append([]Section(nil), sections...),
		cols:        make([]int, len(sections)),
		borderColor: borderColor,
	}
	col := (screen.width-total)/2 + 1
	for i, sec := range sections {
		h.cols[i] = col
		col += ansi.StringWidth(sec.Text) + 4
	}
	for i := range h.sections {
		h.drawSection(i)
	}
	screen.flush()
	return h, nil
}

// SetSection replaces one section's text and style and redraws it. An
// empty color keeps the section's original color; the box keeps its
// original width and overrides longer than the default text are
// truncated to it, so a restyle never shifts or wraps the row.
func (h *Header) SetSection(position int, text, color string, bold bool) {
	if position < 0 || position >= len(h.sections) {
		return
	}
	if color == "" {
		color = h.original[position].Color
	}
	h.sections[position] = Section{Text: text, Color: color, Bold: bold}
	h.drawSection(position)
	h.screen.flush()
}

// RestoreDefaults puts every section back to its construction-time
// text and style.
func (h *Header) RestoreDefaults() {
	copy(h.sections, h.original)
	for i := range h.sections {
		h.drawSection(i)
	}
	h.screen.flush()
}

func (h *Header) drawSection(i int) {
	h.screen.writeBlock(1, h.cols[i], h.renderSection(i))
}

// renderSection renders one bordered box at the section's fixed width.
// lipgloss wraps content wider than the box onto extra lines, so the
// text is truncated first to keep the row a fixed three lines tall.
func (h *Header) renderSection(i int) string {
	sec := h.sections[i]
	width := ansi.StringWidth(h.original[i].Text)
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(h.borderColor)).
		Padding(0, 1).
		Width(width + 2).
		Bold(sec.Bold)
	if sec.Color != "" {
		style = style.Foreground(lipgloss.Color(sec.Color))
	}
	return style.Render(ansi.Truncate(sec.Text, width, ""))
}
