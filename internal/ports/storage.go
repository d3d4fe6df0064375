package ports

import (
	"context"
	"time"

	"github.com/jdhalbert/tomodoro/internal/domain"
)

// IntervalRepository defines the interface for interval history
// persistence. This is a driven port (implemented by adapters).
type IntervalRepository interface {
	// Save persists a new interval record.
	Save(ctx context.Context, interval *domain.Interval) error

	// Update modifies an existing interval record.
	Update(ctx context.Context, interval *domain.Interval) error

	// FindByID retrieves an interval by its unique identifier.
	FindByID(ctx context.Context, id string) (*domain.Interval, error)

	// FindRecent retrieves intervals started after the given time,
	// newest first.
	FindRecent(ctx context.Context, since time.Time) ([]*domain.Interval, error)

	// GetDailyStats returns aggregated statistics for a specific date.
	GetDailyStats(ctx context.Context, date time.Time) (*domain.DailyStats, error)
}

// Storage is the combined repository interface.
type Storage interface {
	// Intervals provides access to interval history operations.
	Intervals() IntervalRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
