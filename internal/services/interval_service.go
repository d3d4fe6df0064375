// Package services contains the application services that sit between
// the timer core and the storage adapters.
package services

import (
	"context"
	"time"

	"github.com/jdhalbert/tomodoro/internal/domain"
	"github.com/jdhalbert/tomodoro/internal/ports"
)

// IntervalService records interval lifecycle events to storage and
// answers stats queries. It implements timer.Recorder.
type IntervalService struct {
	storage ports.Storage
	current *domain.Interval
}

// NewIntervalService creates a new interval service.
func NewIntervalService(storage ports.Storage) *IntervalService {
	return &IntervalService{storage: storage}
}

// IntervalStarted records a new running interval.
func (s *IntervalService) IntervalStarted(ctx context.Context, mode domain.Mode, minutes int) error {
	interval := domain.NewInterval(mode, minutes)
	if err := s.storage.Intervals().Save(ctx, interval); err != nil {
		return err
	}
	s.current = interval
	return nil
}

// IntervalCompleted marks the current interval as completed by expiry.
func (s *IntervalService) IntervalCompleted(ctx context.Context) error {
	if s.current == nil {
		return nil
	}
	s.current.Complete()
	err := s.storage.Intervals().Update(ctx, s.current)
	s.current = nil
	return err
}

// IntervalStopped marks the current interval as stopped early.
func (s *IntervalService) IntervalStopped(ctx context.Context) error {
	if s.current == nil {
		return nil
	}
	s.current.Stop()
	err := s.storage.Intervals().Update(ctx, s.current)
	s.current = nil
	return err
}

// GetDailyStats returns aggregated stats for the given date.
func (s *IntervalService) GetDailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error) {
	return s.storage.Intervals().GetDailyStats(ctx, date)
}

// GetRecent returns up to limit intervals from the last week, newest
// first.
func (s *IntervalService) GetRecent(ctx context.Context, limit int) ([]*domain.Interval, error) {
	since := time.Now().AddDate(0, 0, -7)
	intervals, err := s.storage.Intervals().FindRecent(ctx, since)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(intervals) > limit {
		intervals = intervals[:limit]
	}
	return intervals, nil
}
