// Package ports defines the interfaces between the timer core and the
// terminal, notification and storage adapters.
package ports

import (
	"context"
	"time"

	"github.com/jdhalbert/tomodoro/internal/domain"
)

// Clock wraps wall-clock access so the countdown arithmetic can be
// driven by a fake in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep pauses the calling goroutine for the given duration.
	Sleep(d time.Duration)
}

// DigitRenderer draws one large glyph into one of the four fixed digit
// regions. Position 0 is the leftmost (minutes tens) digit.
type DigitRenderer interface {
	DrawGlyph(position int, digit rune, color string)
}

// CommandSurface is the bottom status region: it shows a prompt and
// reads keys or a line of text. In blocking mode ReadKey waits for a
// key or context cancellation; in non-blocking mode it returns
// immediately with ok=false when no key is pending.
type CommandSurface interface {
	SetInputMode(blocking bool)
	ReadKey(ctx context.Context) (key rune, ok bool)
	ShowPrompt(text string, centered bool)

	// ReadLine reads an echoed line of at most maxLen characters.
	// ok is false when input was aborted or unavailable.
	ReadLine(maxLen int) (line string, ok bool)
}

// HeaderSurface is the row of labeled sections at the top of the
// screen. Overridden sections are restored with RestoreDefaults.
type HeaderSurface interface {
	SetSection(position int, text string, color string, bold bool)
	RestoreDefaults()
}

// Alarm signals that a countdown expired.
type Alarm interface {
	IntervalComplete(mode domain.Mode) error
}
