package timer

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/jdhalbert/tomodoro/internal/domain"
	"github.com/jdhalbert/tomodoro/internal/ports"
)

// Recorder receives interval lifecycle events. Implementations persist
// them for later stats.
type Recorder interface {
	IntervalStarted(ctx context.Context, mode domain.Mode, minutes int) error
	IntervalCompleted(ctx context.Context) error
	IntervalStopped(ctx context.Context) error
}

// Session is the top-level key dispatch loop: it waits for command
// keys while idle, runs countdowns, fires the alarm on expiry and
// rolls into configuring the other mode.
type Session struct {
	engine     *Engine
	controller *Controller
	cmd        ports.CommandSurface
	header     ports.HeaderSurface
	alarm      ports.Alarm
	recorder   Recorder
	log        logrus.FieldLogger
}

func NewSession(engine *Engine, controller *Controller, cmd ports.CommandSurface, header ports.HeaderSurface, alarm ports.Alarm, recorder Recorder, log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Session{
		engine:     engine,
		controller: controller,
		cmd:        cmd,
		header:     header,
		alarm:      alarm,
		recorder:   recorder,
		log:        log,
	}
}

// Run dispatches command keys until quit. A key returned by a stopped
// countdown is fed straight back into dispatch, so pressing w or b
// while running lands in the configuring prompt without an extra
// keypress.
func (s *Session) Run(ctx context.Context) error {
	var pending rune
	for {
		key := pending
		pending = 0
		if key == 0 {
			if ctx.Err() != nil {
				return nil
			}
			var ok bool
			key, ok = s.cmd.ReadKey(ctx)
			if !ok {
				return nil
			}
		}

		switch key {
		case KeyQuit, KeyInterrupt:
			s.log.WithField("mode", s.engine.Mode()).Info("session ended")
			return nil
		case KeyStart:
			pending = s.runCountdown(ctx)
		case KeyWork:
			mode := domain.ModeWork
			s.controller.SwitchMode(&mode)
		case KeyBreak:
			mode := domain.ModeBreak
			s.controller.SwitchMode(&mode)
		}
	}
}

// runCountdown runs one countdown with the start hint swapped to a
// stop hint, records the interval outcome, and on expiry fires the
// alarm and moves to configuring the other mode. It returns a key to
// re-dispatch, or zero when dispatch should go back to waiting.
func (s *Session) runCountdown(ctx context.Context) rune {
	mode := s.engine.Mode()

	restore := overrideSection(s.header, SectionStart, HintStop, "", false)
	if err := s.recorder.IntervalStarted(ctx, mode, s.controller.Profile(mode).Minutes); err != nil {
		s.log.WithError(err).Warn("failed to record interval start")
	}

	res := s.engine.RunCountdown(ctx)
	restore()

	if res.Expired {
		if err := s.recorder.IntervalCompleted(ctx); err != nil {
			s.log.WithError(err).Warn("failed to record interval completion")
		}
		if err := s.alarm.IntervalComplete(mode); err != nil {
			s.log.WithError(err).Warn("failed to fire alarm")
		}
		s.log.WithField("mode", mode).Info("interval complete")
		other := mode.Other()
		s.controller.SwitchMode(&other)
		return 0
	}

	if err := s.recorder.IntervalStopped(ctx); err != nil {
		s.log.WithError(err).Warn("failed to record interval stop")
	}
	switch res.Key {
	case KeyWork, KeyBreak, KeyQuit, KeyInterrupt:
		return res.Key
	}
	return 0
}
