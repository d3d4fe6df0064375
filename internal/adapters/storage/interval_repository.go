package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jdhalbert/tomodoro/internal/domain"
	"github.com/jdhalbert/tomodoro/internal/ports"
)

// intervalRepository implements ports.IntervalRepository using SQLite.
type intervalRepository struct {
	db *sql.DB
}

// newIntervalRepository creates a new interval repository.
func newIntervalRepository(db *sql.DB) ports.IntervalRepository {
	return &intervalRepository{db: db}
}

// Save persists a new interval.
func (r *intervalRepository) Save(ctx context.Context, interval *domain.Interval) error {
	query := `
		INSERT INTO intervals (id, mode, status, minutes, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		interval.ID,
		interval.Mode.String(),
		string(interval.Status),
		interval.Minutes,
		interval.StartedAt,
		interval.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save interval: %w", err)
	}

	return nil
}

// Update rewrites an existing interval's status and end time.
func (r *intervalRepository) Update(ctx context.Context, interval *domain.Interval) error {
	query := `
		UPDATE intervals SET status = ?, ended_at = ? WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(interval.Status),
		interval.EndedAt,
		interval.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update interval: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return domain.ErrIntervalNotFound
	}

	return nil
}

// FindByID retrieves an interval by its ID.
func (r *intervalRepository) FindByID(ctx context.Context, id string) (*domain.Interval, error) {
	query := `
		SELECT id, mode, status, minutes, started_at, ended_at
		FROM intervals WHERE id = ?
	`

	interval, err := scanInterval(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrIntervalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find interval: %w", err)
	}

	return interval, nil
}

// FindRecent returns intervals started at or after the given time,
// newest first.
func (r *intervalRepository) FindRecent(ctx context.Context, since time.Time) ([]*domain.Interval, error) {
	query := `
		SELECT id, mode, status, minutes, started_at, ended_at
		FROM intervals WHERE started_at >= ?
		ORDER BY started_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query intervals: %w", err)
	}
	defer rows.Close()

	var intervals []*domain.Interval
	for rows.Next() {
		interval, err := scanInterval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interval: %w", err)
		}
		intervals = append(intervals, interval)
	}

	return intervals, rows.Err()
}

// GetDailyStats aggregates completed intervals within the local day of
// the given date.
func (r *intervalRepository) GetDailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT mode, COUNT(*), COALESCE(SUM(minutes), 0)
		FROM intervals
		WHERE status = ? AND started_at >= ? AND started_at < ?
		GROUP BY mode
	`

	rows, err := r.db.QueryContext(ctx, query, string(domain.IntervalStatusCompleted), dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	stats := &domain.DailyStats{Date: dayStart}
	for rows.Next() {
		var mode string
		var count, minutes int
		if err := rows.Scan(&mode, &count, &minutes); err != nil {
			return nil, fmt.Errorf("failed to scan daily stats: %w", err)
		}
		switch mode {
		case domain.ModeWork.String():
			stats.WorkIntervals = count
			stats.TotalWorkTime = time.Duration(minutes) * time.Minute
		case domain.ModeBreak.String():
			stats.BreakIntervals = count
		}
	}

	return stats, rows.Err()
}

// scanner abstracts *sql.Row and *sql.Rows for scanInterval.
type scanner interface {
	Scan(dest ...any) error
}

// scanInterval reads one interval row.
func scanInterval(row scanner) (*domain.Interval, error) {
	var interval domain.Interval
	var mode, status string
	var endedAt sql.NullTime

	err := row.Scan(
		&interval.ID,
		&mode,
		&status,
		&interval.Minutes,
		&interval.StartedAt,
		&endedAt,
	)
	if err != nil {
		return nil, err
	}

	interval.Mode = domain.ParseMode(mode)
	interval.Status = domain.IntervalStatus(status)
	if endedAt.Valid {
		t := endedAt.Time
		interval.EndedAt = &t
	}

	return &interval, nil
}
