// Package term renders the fullscreen timer UI directly on the
// terminal: a raw-mode alt screen with a bordered header, a large
// digit display and a one-line command window at the bottom.
package term

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

// Fixed row heights for the bordered header and command boxes.
const (
	headerHeight  = 3
	commandHeight = 3
)

// Screen owns the terminal: raw mode state, the alternate screen and a
// single reader goroutine that feeds keypresses into a channel so
// callers can choose between blocking and non-blocking reads.
type Screen struct {
	out    *bufio.Writer
	width  int
	height int
	state  *term.State
	keys   chan rune
}

// Open puts the terminal into raw mode, switches to the alternate
// screen and starts the key reader. It fails when stdin or stdout is
// not a terminal.
func Open() (*Screen, error) {
	inFd := os.Stdin.Fd()
	outFd := os.Stdout.Fd()
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return nil, fmt.Errorf("tomodoro needs an interactive terminal")
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	width, height, err := term.GetSize(outFd)
	if err != nil {
		_ = term.Restore(inFd, state)
		return nil, fmt.Errorf("failed to read terminal size: %w", err)
	}

	s := &Screen{
		out:    bufio.NewWriter(os.Stdout),
		width:  width,
		height: height,
		state:  state,
		keys:   make(chan rune, 16),
	}
	s.out.WriteString("\x1b[?1049h") // alt screen
	s.out.WriteString("\x1b[?25l")   // hide cursor
	s.clear()
	s.flush()

	go s.readKeys()
	return s, nil
}

// readKeys is the only reader of stdin. Each rune, Ctrl-C included, is
// delivered on the channel; the channel is closed when stdin closes.
func (s *Screen) readKeys() {
	reader := bufio.NewReader(os.Stdin)
	for {
		r, _, err := reader.ReadRune()
		if err != nil {
			close(s.keys)
			return
		}
		s.keys <- r
	}
}

// Close leaves the alternate screen and restores the terminal state.
func (s *Screen) Close() error {
	s.out.WriteString("\x1b[?25h")
	s.out.WriteString("\x1b[?1049l")
	s.flush()
	return term.Restore(os.Stdin.Fd(), s.state)
}

func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// moveTo positions the cursor at the given 1-based row and column.
func (s *Screen) moveTo(row, col int) {
	fmt.Fprintf(s.out, "\x1b[%d;%dH", row, col)
}

func (s *Screen) writeAt(row, col int, text string) {
	s.moveTo(row, col)
	s.out.WriteString(text)
}

// writeBlock writes a multi-line string with every line starting at
// the same column. Styled output keeps its escapes intact.
func (s *Screen) writeBlock(row, col int, block string) {
	for i, line := range strings.Split(block, "\n") {
		s.writeAt(row+i, col, line)
	}
}

func (s *Screen) clear() {
	s.out.WriteString("\x1b[2J")
}

func (s *Screen) showCursor() {
	s.out.WriteString("\x1b[?25h")
}

func (s *Screen) hideCursor() {
	s.out.WriteString("\x1b[?25l")
}

func (s *Screen) flush() {
	_ = s.out.Flush()
}
