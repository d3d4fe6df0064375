package timer

import (
	"context"
	"time"

	"github.com/jdhalbert/tomodoro/internal/domain"
)

// fakeClock drives countdown arithmetic deterministically. Sleep
// advances the clock so loops make progress without wall time.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// drawCall records one DrawGlyph invocation.
type drawCall struct {
	position int
	digit    rune
	color    string
}

type fakeRenderer struct {
	calls []drawCall
}

func (r *fakeRenderer) DrawGlyph(position int, digit rune, color string) {
	r.calls = append(r.calls, drawCall{position: position, digit: digit, color: color})
}

func (r *fakeRenderer) reset() { r.calls = nil }

// positions returns the positions drawn since the last reset, in order.
func (r *fakeRenderer) positions() []int {
	var out []int
	for _, c := range r.calls {
		out = append(out, c.position)
	}
	return out
}

// fakeSurface feeds scripted keys and lines to the code under test and
// records input mode switches and prompts.
type fakeSurface struct {
	keys      []rune
	keyDelay  int
	lines     []string
	lineOK    []bool
	modeLog   []bool
	prompts   []string
	blocking  bool
	lineCalls int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{blocking: true}
}

func (s *fakeSurface) SetInputMode(blocking bool) {
	s.blocking = blocking
	s.modeLog = append(s.modeLog, blocking)
}

func (s *fakeSurface) ReadKey(ctx context.Context) (rune, bool) {
	if ctx.Err() != nil {
		return 0, false
	}
	if s.keyDelay > 0 {
		s.keyDelay--
		return 0, false
	}
	if len(s.keys) == 0 {
		return 0, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

func (s *fakeSurface) ShowPrompt(text string, centered bool) {
	s.prompts = append(s.prompts, text)
}

func (s *fakeSurface) ReadLine(maxLen int) (string, bool) {
	if s.lineCalls >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.lineCalls]
	ok := true
	if s.lineCalls < len(s.lineOK) {
		ok = s.lineOK[s.lineCalls]
	}
	s.lineCalls++
	return line, ok
}

// sectionState is a header section snapshot.
type sectionState struct {
	text  string
	color string
	bold  bool
}

type fakeHeader struct {
	sections map[int]sectionState
	restores int
}

func newFakeHeader() *fakeHeader {
	return &fakeHeader{sections: make(map[int]sectionState)}
}

func (h *fakeHeader) SetSection(position int, text, color string, bold bool) {
	h.sections[position] = sectionState{text: text, color: color, bold: bold}
}

func (h *fakeHeader) RestoreDefaults() {
	h.sections = make(map[int]sectionState)
	h.restores++
}

type fakeAlarm struct {
	calls []domain.Mode
}

func (a *fakeAlarm) IntervalComplete(mode domain.Mode) error {
	a.calls = append(a.calls, mode)
	return nil
}

// fakeRecorder counts lifecycle events.
type fakeRecorder struct {
	started   int
	completed int
	stopped   int
}

func (r *fakeRecorder) IntervalStarted(ctx context.Context, mode domain.Mode, minutes int) error {
	r.started++
	return nil
}

func (r *fakeRecorder) IntervalCompleted(ctx context.Context) error {
	r.completed++
	return nil
}

func (r *fakeRecorder) IntervalStopped(ctx context.Context) error {
	r.stopped++
	return nil
}

// testProfiles returns a profile table with known colors and lengths.
func testProfiles(workMinutes, breakMinutes int) domain.Profiles {
	return domain.NewProfiles(
		domain.ModeProfile{Minutes: workMinutes, Color: "red", Prompt: "Work minutes"},
		domain.ModeProfile{Minutes: breakMinutes, Color: "green", Prompt: "Break minutes"},
	)
}
