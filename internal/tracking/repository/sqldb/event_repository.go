package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eduportal/internal/tracking/domain"
	"eduportal/internal/tracking/usecase"
)

// EventRepository implements usecase.EventRepository on top of database/sql.
// The same statements run against MySQL in production and SQLite in tests;
// only the day-grouping expression in EventStats differs per dialect.
type EventRepository struct {
	db      *sql.DB
	dialect string
}

// NewEventRepository creates an event repository. dialect is "mysql" or
// "sqlite".
func NewEventRepository(db *sql.DB, dialect string) *EventRepository {
	return &EventRepository{db: db, dialect: dialect}
}

var _ usecase.EventRepository = (*EventRepository)(nil)

const insertEventSQL = `
INSERT INTO event_tracking (
	user_id, session_id, event_type, page_path, page_title, referrer,
	user_agent, client_ip, device_type, device_memory, hardware_concurrency,
	browser_name, browser_version, browser_language, os_name, os_version,
	screen_width, screen_height, color_depth, pixel_ratio,
	event_timestamp, event_data, status, created_times
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertEvent appends a full tracking row.
func (r *EventRepository) InsertEvent(ctx context.Context, ev *domain.TrackingEvent) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertEventSQL,
		ev.UserID, ev.SessionID, ev.EventType, ev.PagePath, ev.PageTitle, ev.Referrer,
		ev.UserAgent, ev.ClientIP, ev.DeviceType, ev.DeviceMemory, ev.HardwareConcurrency,
		ev.BrowserName, ev.BrowserVersion, ev.BrowserLanguage, ev.OSName, ev.OSVersion,
		ev.ScreenWidth, ev.ScreenHeight, ev.ColorDepth, ev.PixelRatio,
		ev.EventTimestamp, ev.EventData, ev.Status, ev.CreatedTimes,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const insertSimpleEventSQL = `
INSERT INTO event_tracking (
	user_id, session_id, event_type, page_path, page_title, client_ip,
	browser_name, browser_version, browser_language, os_name, os_version,
	event_timestamp, status, created_times
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertSimpleEvent appends a reduced-column visit row.
func (r *EventRepository) InsertSimpleEvent(ctx context.Context, ev *domain.SimpleEvent) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertSimpleEventSQL,
		ev.UserID, ev.SessionID, ev.EventType, ev.PagePath, ev.PageTitle, ev.ClientIP,
		ev.BrowserName, ev.BrowserVersion, ev.BrowserLanguage, ev.OSName, ev.OSVersion,
		ev.EventTimestamp, ev.Status, ev.CreatedTimes,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// FindDailyEventByUser returns the id of a valid event recorded for the
// user within [from, to).
func (r *EventRepository) FindDailyEventByUser(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	const q = `
SELECT id FROM event_tracking
WHERE user_id = ? AND status = 1 AND created_times >= ? AND created_times < ?
ORDER BY id LIMIT 1`
	return r.findID(ctx, q, userID, from, to)
}

// FindDailyEventByClient is the anonymous-visitor variant keyed by client
// IP and session.
func (r *EventRepository) FindDailyEventByClient(ctx context.Context, clientIP, sessionID string, from, to time.Time) (int64, error) {
	const q = `
SELECT id FROM event_tracking
WHERE client_ip = ? AND session_id = ? AND status = 1 AND created_times >= ? AND created_times < ?
ORDER BY id LIMIT 1`
	return r.findID(ctx, q, clientIP, sessionID, from, to)
}

func (r *EventRepository) findID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrEventNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// EventStats returns per-day, per-type counts of valid events created since
// the given instant. Days follow the client-reported event time; newest day
// first, busiest type first.
func (r *EventRepository) EventStats(ctx context.Context, since time.Time) ([]domain.EventStat, error) {
	day := "DATE_FORMAT(FROM_UNIXTIME(event_timestamp / 1000), '%Y-%m-%d')"
	if r.dialect == "sqlite" {
		day = "strftime('%Y-%m-%d', event_timestamp / 1000, 'unixepoch')"
	}
	query := `
SELECT ` + day + ` AS day, event_type, COUNT(*) AS cnt
FROM event_tracking
WHERE status = 1 AND created_times >= ?
GROUP BY day, event_type
ORDER BY day DESC, cnt DESC`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.EventStat
	for rows.Next() {
		var st domain.EventStat
		if err := rows.Scan(&st.Date, &st.EventType, &st.Count); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
