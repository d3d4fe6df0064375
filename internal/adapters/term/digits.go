package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// digitFont maps each digit to a 5-line block glyph, 4 cells wide.
var digitFont = map[rune][5]string{
	'0': {
		"████",
		"█  █",
		"█  █",
		"█  █",
		"████",
	},
	'1': {
		"  █ ",
		" ██ ",
		"  █ ",
		"  █ ",
		" ███",
	},
	'2': {
		"████",
		"   █",
		"████",
		"█   ",
		"████",
	},
	'3': {
		"████",
		"   █",
		"████",
		"   █",
		"████",
	},
	'4': {
		"█  █",
		"█  █",
		"████",
		"   █",
		"   █",
	},
	'5': {
		"████",
		"█   ",
		"████",
		"   █",
		"████",
	},
	'6': {
		"████",
		"█   ",
		"████",
		"█  █",
		"████",
	},
	'7': {
		"████",
		"   █",
		"  █ ",
		" █  ",
		" █  ",
	},
	'8': {
		"████",
		"█  █",
		"████",
		"█  █",
		"████",
	},
	'9': {
		"████",
		"█  █",
		"████",
		"   █",
		"████",
	},
}

const (
	glyphWidth  = 4
	glyphHeight = 5
	maxScale    = 3
)

// DigitDisplay renders the four MMSS digit positions inside a bordered
// box filling the screen between the header and the command window.
// It implements ports.DigitRenderer.
type DigitDisplay struct {
	screen *Screen
	scale  int
	top    int
	cols   [4]int
}

// NewDigitDisplay draws the main box and computes the glyph scale and
// the fixed column of every digit position. It fails when the terminal
// is too small to fit even unscaled glyphs.
func NewDigitDisplay(screen *Screen, borderColor string) (*DigitDisplay, error) {
	boxTop := headerHeight + 1
	boxHeight := screen.height - headerHeight - commandHeight
	if boxHeight < glyphHeight+2 {
		return nil, fmt.Errorf("terminal too small: %d columns x %d rows", screen.width, screen.height)
	}

	// Layout per scale s: four glyphs of width 4s, an s-wide gap inside
	// each pair and a 3s-wide gap between the minute and second pairs.
	scale := 1
	for scale < maxScale && layoutWidth(scale+1) <= screen.width-4 && (scale+1)*glyphHeight <= boxHeight-2 {
		scale++
	}
	if layoutWidth(scale) > screen.width-4 {
		return nil, fmt.Errorf("terminal too small: %d columns x %d rows", screen.width, screen.height)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(screen.width - 2).
		Height(boxHeight - 2)
	screen.writeBlock(boxTop, 1, box.Render(""))

	d := &DigitDisplay{
		screen: screen,
		scale:  scale,
		top:    boxTop + (boxHeight-scale*glyphHeight)/2,
	}
	left := (screen.width-layoutWidth(scale))/2 + 1
	d.cols = [4]int{
		left,
		left + 5*scale,
		left + 12*scale,
		left + 17*scale,
	}
	screen.flush()
	return d, nil
}

func layoutWidth(scale int) int {
	return 21 * scale
}

// DrawGlyph draws one digit at the given position, overwriting
// whatever glyph was there.
func (d *DigitDisplay) DrawGlyph(position int, digit rune, color string) {
	if position < 0 || position >= len(d.cols) {
		return
	}
	glyph, ok := digitFont[digit]
	if !ok {
		return
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	row := d.top
	for _, line := range glyph {
		scaled := scaleLine(line, d.scale)
		rendered := style.Render(scaled)
		for i := 0; i < d.scale; i++ {
			d.screen.writeAt(row, d.cols[position], rendered)
			row++
		}
	}
	d.screen.flush()
}

// scaleLine widens a glyph line by repeating each cell scale times.
func scaleLine(line string, scale int) string {
	if scale == 1 {
		return line
	}
	var b strings.Builder
	for _, r := range line {
		for i := 0; i < scale; i++ {
			b.WriteRune(r)
		}
	}
	return b.String()
}
