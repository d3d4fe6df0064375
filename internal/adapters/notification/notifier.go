// Package notification fires desktop notifications and sounds when an
// interval completes.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/jdhalbert/tomodoro/internal/config"
	"github.com/jdhalbert/tomodoro/internal/domain"
	"github.com/jdhalbert/tomodoro/internal/ports"
)

// Notifier implements ports.Alarm using desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

var _ ports.Alarm = (*Notifier)(nil)

func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// IsEnabled reports whether notifications are configured on.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

// IntervalComplete announces the end of an interval. Disabled
// notifiers are a silent no-op.
func (n *Notifier) IntervalComplete(mode domain.Mode) error {
	if !n.IsEnabled() {
		return nil
	}
	if n.cfg.Sound {
		_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
	}

	title := "🍅 Work interval complete!"
	message := "Time for a break."
	if mode == domain.ModeBreak {
		title = "☕ Break over!"
		message = "Back to work."
	}
	return beeep.Notify(title, message, "")
}
