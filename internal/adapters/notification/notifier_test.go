package notification

import (
	"testing"

	"github.com/jdhalbert/tomodoro/internal/config"
	"github.com/jdhalbert/tomodoro/internal/domain"
)

func TestNotifier_IsEnabled(t *testing.T) {
	if New(nil).IsEnabled() {
		t.Error("nil config reported enabled")
	}
	if New(&config.NotificationConfig{}).IsEnabled() {
		t.Error("disabled config reported enabled")
	}
	if !New(&config.NotificationConfig{Enabled: true}).IsEnabled() {
		t.Error("enabled config reported disabled")
	}
}

func TestNotifier_DisabledIsNoOp(t *testing.T) {
	notifier := New(&config.NotificationConfig{Enabled: false, Sound: true})
	if err := notifier.IntervalComplete(domain.ModeWork); err != nil {
		t.Errorf("IntervalComplete() error = %v on disabled notifier", err)
	}
}
