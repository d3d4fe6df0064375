package tui

import (
	"errors"
	"testing"

	"github.com/jdhalbert/tomodoro/internal/config"
	"github.com/jdhalbert/tomodoro/internal/domain"
)

func TestEditorModel_Apply(t *testing.T) {
	t.Run("valid form writes back to config", func(t *testing.T) {
		cfg := config.DefaultConfig()
		m := newEditorModel(cfg)
		m.inputs[0].SetValue("45")
		m.inputs[1].SetValue("10")
		m.toggles[0] = false

		if err := m.apply(); err != nil {
			t.Fatalf("apply() error = %v", err)
		}
		if cfg.Timer.WorkMinutes != 45 || cfg.Timer.BreakMinutes != 10 {
			t.Errorf("minutes = %d/%d, want 45/10", cfg.Timer.WorkMinutes, cfg.Timer.BreakMinutes)
		}
		if cfg.Notifications.Enabled {
			t.Error("notifications still enabled")
		}
	})

	t.Run("out of range minutes rejected", func(t *testing.T) {
		cfg := config.DefaultConfig()
		m := newEditorModel(cfg)
		m.inputs[0].SetValue("0")

		if err := m.apply(); !errors.Is(err, domain.ErrInvalidMinutes) {
			t.Errorf("apply() error = %v, want ErrInvalidMinutes", err)
		}
		if cfg.Timer.WorkMinutes != 25 {
			t.Errorf("config mutated on invalid input: WorkMinutes = %d", cfg.Timer.WorkMinutes)
		}
	})

	t.Run("non-numeric minutes rejected", func(t *testing.T) {
		cfg := config.DefaultConfig()
		m := newEditorModel(cfg)
		m.inputs[1].SetValue("xx")

		if err := m.apply(); !errors.Is(err, domain.ErrInvalidMinutes) {
			t.Errorf("apply() error = %v, want ErrInvalidMinutes", err)
		}
	})
}

func TestEditorModel_Cursor(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newEditorModel(cfg)

	m.setCursor(fieldSound)
	if m.cursor != fieldSound {
		t.Errorf("cursor = %d, want %d", m.cursor, fieldSound)
	}
	if m.inputs[0].Focused() {
		t.Error("first input still focused on a toggle row")
	}

	m.setCursor(fieldCount) // out of range, ignored
	if m.cursor != fieldSound {
		t.Errorf("cursor = %d after out-of-range move, want %d", m.cursor, fieldSound)
	}
}
