package timer

import (
	"context"
	"testing"
	"time"

	"github.com/jdhalbert/tomodoro/internal/domain"
)

type sessionFixture struct {
	session  *Session
	engine   *Engine
	clock    *fakeClock
	surface  *fakeSurface
	header   *fakeHeader
	alarm    *fakeAlarm
	recorder *fakeRecorder
	profiles *domain.Profiles
}

func newSessionFixture(workMinutes, breakMinutes int) *sessionFixture {
	clock := newFakeClock()
	surface := newFakeSurface()
	header := newFakeHeader()
	alarm := &fakeAlarm{}
	recorder := &fakeRecorder{}
	profiles := testProfiles(workMinutes, breakMinutes)

	engine := NewEngine(clock, &fakeRenderer{}, surface, &profiles, 500*time.Millisecond)
	controller := NewController(engine, surface, header, &profiles)
	session := NewSession(engine, controller, surface, header, alarm, recorder, nil)
	engine.SetTimer(workMinutes)

	return &sessionFixture{
		session:  session,
		engine:   engine,
		clock:    clock,
		surface:  surface,
		header:   header,
		alarm:    alarm,
		recorder: recorder,
		profiles: &profiles,
	}
}

func TestSession_QuitKeys(t *testing.T) {
	for _, key := range []rune{KeyQuit, KeyInterrupt} {
		f := newSessionFixture(25, 5)
		f.surface.keys = []rune{key}

		if err := f.session.Run(context.Background()); err != nil {
			t.Errorf("Run() error = %v", err)
		}
		if f.recorder.started != 0 {
			t.Errorf("intervals started = %d, want 0", f.recorder.started)
		}
	}
}

func TestSession_ExpiryRollsIntoOtherMode(t *testing.T) {
	f := newSessionFixture(1, 5)
	// start, run to expiry, accept the default break length, then the
	// key feed runs out and the session ends.
	f.surface.keys = []rune{KeyStart}
	f.surface.lines = []string{""}

	if err := f.session.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}

	t.Run("alarm fires once for the expired mode", func(t *testing.T) {
		if len(f.alarm.calls) != 1 || f.alarm.calls[0] != domain.ModeWork {
			t.Errorf("alarm calls = %v, want one work call", f.alarm.calls)
		}
	})

	t.Run("engine switched to break", func(t *testing.T) {
		if f.engine.Mode() != domain.ModeBreak {
			t.Errorf("Mode() = %v, want break", f.engine.Mode())
		}
	})

	t.Run("break countdown programmed with default length", func(t *testing.T) {
		if got := f.engine.RemainingSeconds(); got != 5*60+1 {
			t.Errorf("RemainingSeconds() = %d, want %d", got, 5*60+1)
		}
	})

	t.Run("interval recorded as completed", func(t *testing.T) {
		if f.recorder.started != 1 || f.recorder.completed != 1 || f.recorder.stopped != 0 {
			t.Errorf("recorder = %+v, want one started and one completed", f.recorder)
		}
	})

	t.Run("header restored", func(t *testing.T) {
		if len(f.header.sections) != 0 {
			t.Errorf("header sections still overridden: %v", f.header.sections)
		}
	})
}

func TestSession_StopThenQuit(t *testing.T) {
	f := newSessionFixture(25, 5)
	f.surface.keys = []rune{KeyStart, KeyQuit}

	if err := f.session.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}

	if f.recorder.started != 1 || f.recorder.stopped != 1 || f.recorder.completed != 0 {
		t.Errorf("recorder = %+v, want one started and one stopped", f.recorder)
	}
	if len(f.alarm.calls) != 0 {
		t.Errorf("alarm calls = %v, want none", f.alarm.calls)
	}
	if !f.surface.blocking {
		t.Error("surface left in non-blocking mode")
	}
}

func TestSession_ModeKeyDuringCountdownReconfigures(t *testing.T) {
	// Pressing b mid-countdown stops the work interval and lands
	// straight in the break prompt without another keypress.
	f := newSessionFixture(25, 5)
	f.surface.keys = []rune{KeyStart, KeyBreak}
	f.surface.lines = []string{"8"}

	if err := f.session.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}

	if f.engine.Mode() != domain.ModeBreak {
		t.Errorf("Mode() = %v, want break", f.engine.Mode())
	}
	if got := f.profiles.For(domain.ModeBreak).Minutes; got != 8 {
		t.Errorf("break minutes = %d, want 8", got)
	}
	if f.recorder.stopped != 1 {
		t.Errorf("intervals stopped = %d, want 1", f.recorder.stopped)
	}
}

func TestSession_StartHintSwappedWhileRunning(t *testing.T) {
	f := newSessionFixture(25, 5)
	f.surface.keys = []rune{KeyStart, KeyQuit}

	// Capture the header override made while the countdown runs by
	// wrapping the recorder's start hook via the surface's key feed:
	// the first ReadKey in the countdown happens after the override.
	f.session.Run(context.Background())

	if f.header.restores == 0 {
		t.Error("header defaults never restored")
	}
}

func TestSession_UnknownKeysIgnoredWhileIdle(t *testing.T) {
	f := newSessionFixture(25, 5)
	f.surface.keys = []rune{'x', '?', KeyQuit}

	if err := f.session.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if f.recorder.started != 0 {
		t.Errorf("intervals started = %d, want 0", f.recorder.started)
	}
}

func TestSession_CancelledContextEndsIdleWait(t *testing.T) {
	// A termination signal cancels the context; the idle key wait must
	// end without another keypress.
	f := newSessionFixture(25, 5)
	f.surface.keys = []rune{KeyStart}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := f.session.Run(ctx); err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if f.recorder.started != 0 {
		t.Errorf("intervals started = %d, want 0", f.recorder.started)
	}
}

func TestSession_ClosedInputEndsSession(t *testing.T) {
	f := newSessionFixture(25, 5)
	// no keys at all: ReadKey reports not-ok

	if err := f.session.Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
