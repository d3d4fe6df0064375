package term

import (
	"context"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// CommandWindow is the bordered one-line prompt box at the bottom of
// the screen. It implements ports.CommandSurface.
type CommandWindow struct {
	screen      *Screen
	blocking    bool
	prompt      string
	promptColor string
	borderColor string
	centered    bool
}

func NewCommandWindow(screen *Screen, borderColor, promptColor string) *CommandWindow {
	return &CommandWindow{
		screen:      screen,
		blocking:    true,
		promptColor: promptColor,
		borderColor: borderColor,
	}
}

func (c *CommandWindow) row() int {
	return c.screen.height - commandHeight + 1
}

// SetInputMode selects between blocking and non-blocking key reads.
func (c *CommandWindow) SetInputMode(blocking bool) {
	c.blocking = blocking
}

// ReadKey returns the next keypress. In blocking mode it waits for a
// key or context cancellation; in non-blocking mode it returns
// immediately with ok=false when no key is pending. ok is also false
// once stdin has closed or the context is done.
func (c *CommandWindow) ReadKey(ctx context.Context) (rune, bool) {
	if c.blocking {
		select {
		case r, ok := <-c.screen.keys:
			return r, ok
		case <-ctx.Done():
			return 0, false
		}
	}
	select {
	case r, ok := <-c.screen.keys:
		return r, ok
	default:
		return 0, false
	}
}

// ShowPrompt replaces the command box content.
func (c *CommandWindow) ShowPrompt(text string, centered bool) {
	c.prompt = text
	c.centered = centered

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.borderColor)).
		Foreground(lipgloss.Color(c.promptColor)).
		Width(c.screen.width - 2)
	if centered {
		style = style.Align(lipgloss.Center)
	} else {
		style = style.Padding(0, 1)
	}
	c.screen.writeBlock(c.row(), 1, style.Render(text))
	c.screen.flush()
}

// ReadLine reads a line after the current prompt with simple echo and
// backspace handling, up to maxLen printable characters. Enter accepts;
// Escape or Ctrl-C aborts with ok=false.
func (c *CommandWindow) ReadLine(maxLen int) (string, bool) {
	// border + padding + prompt text
	col := 3 + ansi.StringWidth(c.prompt)
	row := c.row() + 1

	c.screen.moveTo(row, col)
	c.screen.showCursor()
	c.screen.flush()
	defer func() {
		c.screen.hideCursor()
		c.screen.flush()
	}()

	var buf []rune
	for {
		r, ok := <-c.screen.keys
		if !ok {
			return "", false
		}
		switch {
		case r == '\r' || r == '\n':
			return string(buf), true
		case r == 0x1b || r == 0x03:
			return "", false
		case r == 0x7f || r == '\b':
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				c.screen.writeAt(row, col, strings.Repeat(" ", maxLen))
				c.screen.writeAt(row, col, string(buf))
				c.screen.moveTo(row, col+len(buf))
				c.screen.flush()
			}
		case unicode.IsPrint(r) && len(buf) < maxLen:
			buf = append(buf, r)
			c.screen.writeAt(row, col+len(buf)-1, string(r))
			c.screen.flush()
		}
	}
}
