package domain

import "time"

// IntervalStatus represents the lifecycle state of a recorded interval.
type IntervalStatus string

const (
	IntervalStatusRunning   IntervalStatus = "running"
	IntervalStatusCompleted IntervalStatus = "completed"
	IntervalStatusStopped   IntervalStatus = "stopped"
)

// Interval is one countdown recorded in the history log.
type Interval struct {
	ID        string
	Mode      Mode
	Status    IntervalStatus
	Minutes   int
	StartedAt time.Time
	EndedAt   *time.Time
}

// NewInterval creates a running interval record for a countdown that
// just started.
func NewInterval(mode Mode, minutes int) *Interval {
	return &Interval{
		ID:        generateID(),
		Mode:      mode,
		Status:    IntervalStatusRunning,
		Minutes:   minutes,
		StartedAt: time.Now(),
	}
}

// Complete marks the interval as finished by natural expiry.
func (i *Interval) Complete() {
	now := time.Now()
	i.EndedAt = &now
	i.Status = IntervalStatusCompleted
}

// Stop marks the interval as ended early by the user.
func (i *Interval) Stop() {
	now := time.Now()
	i.EndedAt = &now
	i.Status = IntervalStatusStopped
}

// Elapsed returns how long the interval actually ran.
func (i *Interval) Elapsed() time.Duration {
	if i.EndedAt == nil {
		return time.Since(i.StartedAt)
	}
	return i.EndedAt.Sub(i.StartedAt)
}

// DailyStats aggregates completed intervals for a single day.
type DailyStats struct {
	Date           time.Time
	WorkIntervals  int
	BreakIntervals int
	TotalWorkTime  time.Duration
}
