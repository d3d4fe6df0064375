// Package timer contains the countdown core: the engine that owns the
// live countdown state and the selective digit redraw, the mode
// controller with its configuring flow, and the session key-dispatch
// loop that ties them together.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/jdhalbert/tomodoro/internal/domain"
	"github.com/jdhalbert/tomodoro/internal/ports"
)

// digitCount is the number of digit positions on screen (MMSS).
const digitCount = 4

// Command keys recognized by the session and countdown loops.
const (
	KeyQuit      = 'q'
	KeyStart     = 's'
	KeyWork      = 'w'
	KeyBreak     = 'b'
	KeyInterrupt = rune(0x03) // Ctrl-C, treated as a normal stop
)

// defaultTick bounds the drift between the displayed time and the wall
// clock while keeping the loop responsive to keypresses.
const defaultTick = 500 * time.Millisecond

// Engine owns the live countdown: the end time, the configured length
// and the four-character string last written to the screen. All
// mutation happens on the calling goroutine.
type Engine struct {
	clock    ports.Clock
	renderer ports.DigitRenderer
	cmd      ports.CommandSurface
	profiles *domain.Profiles

	mode              domain.Mode
	endTime           time.Time
	configuredSeconds int
	lastDigits        string
	tick              time.Duration
}

// NewEngine creates an engine in Work mode. The tick duration is
// clamped to at most one second so the displayed time never visibly
// stalls.
func NewEngine(clock ports.Clock, renderer ports.DigitRenderer, cmd ports.CommandSurface, profiles *domain.Profiles, tick time.Duration) *Engine {
	if tick <= 0 || tick > time.Second {
		tick = defaultTick
	}
	return &Engine{
		clock:    clock,
		renderer: renderer,
		cmd:      cmd,
		profiles: profiles,
		mode:     domain.ModeWork,
		tick:     tick,
	}
}

// Mode returns the mode the engine is currently counting down.
func (e *Engine) Mode() domain.Mode {
	return e.mode
}

// SetMode changes the current mode without touching the countdown.
func (e *Engine) SetMode(m domain.Mode) {
	e.mode = m
}

// SetTimer recomputes the countdown from now for the given interval
// length and forces a full redraw of all four digit positions. The
// extra second rounds up so the first displayed second is never below
// the configured minutes. Callers validate the range beforehand.
func (e *Engine) SetTimer(minutes int) {
	e.configuredSeconds = minutes*60 + 1
	e.endTime = e.clock.Now().Add(time.Duration(e.configuredSeconds) * time.Second)
	e.lastDigits = ""
	e.RefreshDisplay(true)
}

// RemainingSeconds returns the whole seconds left until the end time,
// clamped to zero after expiry.
func (e *Engine) RemainingSeconds() int {
	left := int(e.endTime.Sub(e.clock.Now()) / time.Second)
	if left < 0 {
		return 0
	}
	return left
}

// FormattedDigits returns the remaining time as a 4-character MMSS
// string, both halves zero-padded.
func (e *Engine) FormattedDigits() string {
	left := e.RemainingSeconds()
	return fmt.Sprintf("%02d%02d", left/60, left%60)
}

// ChangedPositions returns the digit positions whose character differs
// from the last rendered string. Before anything has been rendered it
// returns all four positions.
func (e *Engine) ChangedPositions() []int {
	return e.changedFrom(e.FormattedDigits())
}

func (e *Engine) changedFrom(current string) []int {
	if e.lastDigits == "" {
		return []int{0, 1, 2, 3}
	}
	var changed []int
	for i := 0; i < digitCount; i++ {
		if current[i] != e.lastDigits[i] {
			changed = append(changed, i)
		}
	}
	return changed
}

// RefreshDisplay redraws the digit positions that changed since the
// last render, or all four when forceAll is set. The string drawn here
// is the one recorded, so the next diff is computed against what is
// actually on screen.
func (e *Engine) RefreshDisplay(forceAll bool) {
	current := e.FormattedDigits()
	positions := e.changedFrom(current)
	if forceAll {
		positions = []int{0, 1, 2, 3}
	}
	color := e.profiles.For(e.mode).Color
	for _, pos := range positions {
		e.renderer.DrawGlyph(pos, rune(current[pos]), color)
	}
	e.lastDigits = current
}

// LoopResult reports why a countdown loop exited.
type LoopResult struct {
	Key     rune // command key that stopped the loop, zero on expiry
	Expired bool
}

// RunCountdown restarts the countdown from the configured seconds and
// alternates between a zero-timeout key poll, a selective redraw and a
// bounded sleep until a command key arrives or the time runs out.
// Input is switched to non-blocking for the duration of the loop and
// restored on every exit path. On an early stop the remaining seconds
// are kept so a later start resumes where the countdown left off.
func (e *Engine) RunCountdown(ctx context.Context) LoopResult {
	e.endTime = e.clock.Now().Add(time.Duration(e.configuredSeconds) * time.Second)

	release := nonBlockingInput(e.cmd)
	defer release()

	for {
		if ctx.Err() != nil {
			return LoopResult{Key: KeyInterrupt}
		}
		if key, ok := e.cmd.ReadKey(ctx); ok {
			switch key {
			case KeyStart, KeyWork, KeyBreak, KeyQuit, KeyInterrupt:
				e.configuredSeconds = e.RemainingSeconds()
				return LoopResult{Key: key}
			}
		}
		e.RefreshDisplay(false)
		e.configuredSeconds = e.RemainingSeconds()
		if e.configuredSeconds == 0 {
			return LoopResult{Expired: true}
		}
		e.clock.Sleep(e.tick)
	}
}
