package usecase

import (
	"context"
	"time"

	"eduportal/internal/tracking/domain"
)

// EventRepository is the persistence boundary for the ingestion services.
// Implementations append rows to the shared event_tracking table and answer
// the same-day duplicate and statistics queries.
type EventRepository interface {
	// InsertEvent appends a full tracking row and returns its generated id.
	InsertEvent(ctx context.Context, ev *domain.TrackingEvent) (int64, error)

	// InsertSimpleEvent appends a reduced-column row and returns its id.
	InsertSimpleEvent(ctx context.Context, ev *domain.SimpleEvent) (int64, error)

	// FindDailyEventByUser returns the id of any valid event recorded for
	// the user within [from, to), or domain.ErrEventNotFound.
	FindDailyEventByUser(ctx context.Context, userID string, from, to time.Time) (int64, error)

	// FindDailyEventByClient is the anonymous-visitor variant keyed by
	// client IP and session.
	FindDailyEventByClient(ctx context.Context, clientIP, sessionID string, from, to time.Time) (int64, error)

	// EventStats returns per-day, per-type counts of valid events created
	// since the given instant.
	EventStats(ctx context.Context, since time.Time) ([]domain.EventStat, error)
}
