package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timer.WorkMinutes != 25 {
		t.Errorf("WorkMinutes = %d, want 25", cfg.Timer.WorkMinutes)
	}
	if cfg.Timer.BreakMinutes != 5 {
		t.Errorf("BreakMinutes = %d, want 5", cfg.Timer.BreakMinutes)
	}
	if time.Duration(cfg.Timer.TickInterval) > time.Second {
		t.Errorf("TickInterval = %v, want at most 1s", cfg.Timer.TickInterval)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications disabled by default")
	}
}

func TestResolveDataDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	t.Run("default expands to home", func(t *testing.T) {
		got, err := ResolveDataDir(DefaultConfig().Storage.DataDir)
		if err != nil {
			t.Fatalf("ResolveDataDir() error = %v", err)
		}
		if got != filepath.Join(home, ".tomodoro") {
			t.Errorf("ResolveDataDir() = %q, want %q", got, filepath.Join(home, ".tomodoro"))
		}
		if strings.Contains(got, "~") {
			t.Errorf("ResolveDataDir() = %q still contains a literal tilde", got)
		}
	})

	t.Run("empty expands to home", func(t *testing.T) {
		got, err := ResolveDataDir("")
		if err != nil {
			t.Fatalf("ResolveDataDir() error = %v", err)
		}
		if got != filepath.Join(home, ".tomodoro") {
			t.Errorf("ResolveDataDir() = %q, want %q", got, filepath.Join(home, ".tomodoro"))
		}
	})

	t.Run("explicit path passes through", func(t *testing.T) {
		got, err := ResolveDataDir("/var/lib/tomodoro")
		if err != nil {
			t.Fatalf("ResolveDataDir() error = %v", err)
		}
		if got != "/var/lib/tomodoro" {
			t.Errorf("ResolveDataDir() = %q, want %q", got, "/var/lib/tomodoro")
		}
	})
}

func TestDuration_Text(t *testing.T) {
	t.Run("unmarshal", func(t *testing.T) {
		var d Duration
		if err := d.UnmarshalText([]byte("750ms")); err != nil {
			t.Fatalf("UnmarshalText() error = %v", err)
		}
		if time.Duration(d) != 750*time.Millisecond {
			t.Errorf("duration = %v, want 750ms", time.Duration(d))
		}
	})

	t.Run("unmarshal rejects garbage", func(t *testing.T) {
		var d Duration
		if err := d.UnmarshalText([]byte("soon")); err == nil {
			t.Error("UnmarshalText() accepted invalid duration")
		}
	})

	t.Run("marshal round trip", func(t *testing.T) {
		d := Duration(90 * time.Second)
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		if string(text) != "1m30s" {
			t.Errorf("MarshalText() = %q, want %q", text, "1m30s")
		}
	})
}
