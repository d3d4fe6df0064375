// Package domain contains the core types for tomodoro: interval modes,
// per-mode profiles and the persisted interval history records.
package domain

import "errors"

var (
	ErrInvalidMinutes   = errors.New("minutes must be between 1 and 99")
	ErrIntervalNotFound = errors.New("interval not found")
	ErrHeaderTooWide    = errors.New("header too long for screen")
)

// Mode identifies which kind of interval the timer counts down.
type Mode int

const (
	ModeWork Mode = iota
	ModeBreak
)

// modeCount is the number of Mode values; profile tables are sized by it.
const modeCount = 2

// String returns the lowercase mode name used in storage and logs.
func (m Mode) String() string {
	if m == ModeBreak {
		return "break"
	}
	return "work"
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// ParseMode converts a stored mode name back to a Mode.
func ParseMode(s string) Mode {
	if s == "break" {
		return ModeBreak
	}
	return ModeWork
}

const (
	// MinMinutes and MaxMinutes bound a configurable interval length.
	MinMinutes = 1
	MaxMinutes = 99
)

// ClampMinutes forces an interval length into the [1, 99] range.
func ClampMinutes(minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}

// ValidMinutes reports whether an interval length needs no clamping.
func ValidMinutes(minutes int) bool {
	return minutes >= MinMinutes && minutes <= MaxMinutes
}
