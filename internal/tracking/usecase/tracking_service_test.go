package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eduportal/internal/tracking/domain"
)

type mockEventRepo struct {
	events       []*domain.TrackingEvent
	simpleEvents []*domain.SimpleEvent
	nextID       int64

	dailyID        int64
	dailyErr       error
	dailyUserID    string
	dailySessionID string

	insertErr error
	statsRows []domain.EventStat
	statsErr  error
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{nextID: 1, dailyErr: domain.ErrEventNotFound}
}

func (m *mockEventRepo) InsertEvent(ctx context.Context, ev *domain.TrackingEvent) (int64, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.events = append(m.events, ev)
	id := m.nextID
	m.nextID++
	return id, nil
}

func (m *mockEventRepo) InsertSimpleEvent(ctx context.Context, ev *domain.SimpleEvent) (int64, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.simpleEvents = append(m.simpleEvents, ev)
	id := m.nextID
	m.nextID++
	return id, nil
}

func (m *mockEventRepo) FindDailyEventByUser(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	m.dailyUserID = userID
	return m.dailyID, m.dailyErr
}

func (m *mockEventRepo) FindDailyEventByClient(ctx context.Context, clientIP, sessionID string, from, to time.Time) (int64, error) {
	m.dailySessionID = sessionID
	return m.dailyID, m.dailyErr
}

func (m *mockEventRepo) EventStats(ctx context.Context, since time.Time) ([]domain.EventStat, error) {
	return m.statsRows, m.statsErr
}

func newTrackingService(repo *mockEventRepo) *TrackingService {
	svc := NewTrackingService(repo, NewRateLimiter(DefaultRateLimitConfig()), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func trackingRequest() *domain.TrackingRequest {
	return &domain.TrackingRequest{
		SessionID: "sess-1",
		PagePath:  "/research/papers",
		EventType: "page_view",
		Timestamp: time.Date(2025, 6, 1, 11, 59, 0, 0, time.UTC).UnixMilli(),
	}
}

func TestLogEvent_ValidRequest_Persisted(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTrackingService(repo)

	result, err := svc.LogEvent(context.Background(), trackingRequest(), "203.0.113.7", "")

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.TrackingID)
	require.Len(t, repo.events, 1)
	assert.Equal(t, "203.0.113.7", repo.events[0].ClientIP)
	assert.Equal(t, 1, repo.events[0].Status)
}

func TestLogEvent_ClientSuppliedIPDiscarded(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTrackingService(repo)

	req := trackingRequest()
	req.ClientIP = "10.0.0.99"
	_, err := svc.LogEvent(context.Background(), req, "203.0.113.7", "")

	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", repo.events[0].ClientIP)
}

func TestLogEvent_InvalidRequest_NotPersisted(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTrackingService(repo)

	req := trackingRequest()
	req.SessionID = ""
	_, err := svc.LogEvent(context.Background(), req, "203.0.113.7", "")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.events)
}

func TestLogEvent_RateLimited_NotValidated(t *testing.T) {
	repo := newMockEventRepo()
	svc := NewTrackingService(repo, NewRateLimiter(RateLimitConfig{
		Window:        time.Minute,
		MaxRequests:   1,
		BlockDuration: 5 * time.Minute,
	}), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	_, err := svc.LogEvent(context.Background(), trackingRequest(), "203.0.113.7", "")
	require.NoError(t, err)

	_, err = svc.LogEvent(context.Background(), trackingRequest(), "203.0.113.7", "")

	var rerr *domain.RateLimitError
	require.ErrorAs(t, err, &rerr)
	assert.Len(t, repo.events, 1)
}

func TestLogEvent_RepoFailure_NoRateLimitUpdate(t *testing.T) {
	repo := newMockEventRepo()
	repo.insertErr = errors.New("db gone")
	svc := newTrackingService(repo)

	_, err := svc.LogEvent(context.Background(), trackingRequest(), "203.0.113.7", "")
	require.Error(t, err)

	key := rateLimitKey("203.0.113.7", "sess-1")
	svc.limiter.mu.Lock()
	_, exists := svc.limiter.entries[key]
	svc.limiter.mu.Unlock()
	assert.False(t, exists)
}

func TestLogEvent_UserAgentFallbackEnrichment(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTrackingService(repo)

	const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	_, err := svc.LogEvent(context.Background(), trackingRequest(), "203.0.113.7", chromeUA)

	require.NoError(t, err)
	ev := repo.events[0]
	require.NotNil(t, ev.BrowserName)
	assert.Equal(t, "Chrome", *ev.BrowserName)
	require.NotNil(t, ev.OSName)
	assert.Equal(t, "Windows", *ev.OSName)
	require.NotNil(t, ev.DeviceType)
	assert.Equal(t, "Desktop", *ev.DeviceType)
}

func TestLogEvent_ClientReportedFieldsWin(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTrackingService(repo)

	req := trackingRequest()
	req.BrowserInfo = &domain.BrowserInfo{Name: "CustomBrowser", Version: "1.0"}
	req.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	_, err := svc.LogEvent(context.Background(), req, "203.0.113.7", "")

	require.NoError(t, err)
	ev := repo.events[0]
	require.NotNil(t, ev.BrowserName)
	assert.Equal(t, "CustomBrowser", *ev.BrowserName)
	require.NotNil(t, ev.OSName)
	assert.Equal(t, "Windows", *ev.OSName)
}

func TestLogEvent_RequiredFieldsTrimmed(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTrackingService(repo)

	req := trackingRequest()
	req.SessionID = "  sess-1  "
	req.EventType = " page_view "
	req.PagePath = " /research/papers "
	_, err := svc.LogEvent(context.Background(), req, "203.0.113.7", "")

	require.NoError(t, err)
	ev := repo.events[0]
	assert.Equal(t, "sess-1", ev.SessionID)
	assert.Equal(t, "page_view", ev.EventType)
	assert.Equal(t, "/research/papers", ev.PagePath)
}

func TestLogEvent_BlankOptionalsBecomeNil(t *testing.T) {
	repo := newMockEventRepo()
	svc := newTrackingService(repo)

	req := trackingRequest()
	req.UserID = "   "
	req.Referrer = ""
	_, err := svc.LogEvent(context.Background(), req, "203.0.113.7", "")

	require.NoError(t, err)
	assert.Nil(t, repo.events[0].UserID)
	assert.Nil(t, repo.events[0].Referrer)
}

func TestStats_DelegatesToRepository(t *testing.T) {
	repo := newMockEventRepo()
	repo.statsRows = []domain.EventStat{{Date: "2025-05-31", EventType: "page_view", Count: 12}}
	svc := newTrackingService(repo)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, repo.statsRows, stats)
}
