package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eduportal/internal/tracking/domain"
	"eduportal/internal/tracking/usecase"
)

type stubEventRepo struct {
	events       []*domain.TrackingEvent
	simpleEvents []*domain.SimpleEvent
	dailyID      int64
	dailyErr     error
	statsRows    []domain.EventStat
}

func (s *stubEventRepo) InsertEvent(ctx context.Context, ev *domain.TrackingEvent) (int64, error) {
	s.events = append(s.events, ev)
	return int64(len(s.events)), nil
}

func (s *stubEventRepo) InsertSimpleEvent(ctx context.Context, ev *domain.SimpleEvent) (int64, error) {
	s.simpleEvents = append(s.simpleEvents, ev)
	return int64(len(s.simpleEvents)), nil
}

func (s *stubEventRepo) FindDailyEventByUser(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	return s.dailyID, s.dailyErr
}

func (s *stubEventRepo) FindDailyEventByClient(ctx context.Context, clientIP, sessionID string, from, to time.Time) (int64, error) {
	return s.dailyID, s.dailyErr
}

func (s *stubEventRepo) EventStats(ctx context.Context, since time.Time) ([]domain.EventStat, error) {
	return s.statsRows, nil
}

type envelope struct {
	Status    int             `json:"status"`
	ErrorCode int             `json:"errorCode"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T, repo *stubEventRepo) chi.Router {
	t.Helper()
	logger := zap.NewNop()
	limiter := usecase.NewRateLimiter(usecase.DefaultRateLimitConfig())
	handler := NewHandler(
		usecase.NewTrackingService(repo, limiter, logger),
		usecase.NewSimpleLogService(repo, logger),
		logger,
	)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any, mutate func(*http.Request)) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func trackingBody() map[string]any {
	return map[string]any{
		"sessionId": "sess-1",
		"pagePath":  "/research/papers",
		"eventType": "page_view",
		"timestamp": time.Now().UnixMilli(),
	}
}

func TestLogEvent_Success_Returns200WithCode0(t *testing.T) {
	repo := &stubEventRepo{dailyErr: domain.ErrEventNotFound}
	router := setupRouter(t, repo)

	rec, env := doJSON(t, router, http.MethodPost, "/eduPortal/tracking/log", trackingBody(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.ErrorCode)
	assert.Equal(t, 200, env.Status)
	require.Len(t, repo.events, 1)
}

func TestLogEvent_ValidationFailure_Returns200WithCode422(t *testing.T) {
	repo := &stubEventRepo{dailyErr: domain.ErrEventNotFound}
	router := setupRouter(t, repo)

	body := trackingBody()
	body["sessionId"] = ""
	rec, env := doJSON(t, router, http.MethodPost, "/eduPortal/tracking/log", body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 422, env.ErrorCode)
	assert.Equal(t, "sessionId must not be empty", env.Message)
	assert.Empty(t, repo.events)
}

func TestLogEvent_MalformedJSON_Returns422Envelope(t *testing.T) {
	repo := &stubEventRepo{dailyErr: domain.ErrEventNotFound}
	router := setupRouter(t, repo)

	req := httptest.NewRequest(http.MethodPost, "/eduPortal/tracking/log", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 422, env.ErrorCode)
}

func TestLogEvent_RateLimited_Returns200WithErrorBody(t *testing.T) {
	repo := &stubEventRepo{dailyErr: domain.ErrEventNotFound}
	logger := zap.NewNop()
	limiter := usecase.NewRateLimiter(usecase.RateLimitConfig{
		Window:        time.Minute,
		MaxRequests:   1,
		BlockDuration: 5 * time.Minute,
	})
	handler := NewHandler(
		usecase.NewTrackingService(repo, limiter, logger),
		usecase.NewSimpleLogService(repo, logger),
		logger,
	)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	_, env := doJSON(t, router, http.MethodPost, "/eduPortal/tracking/log", trackingBody(), nil)
	require.Equal(t, 0, env.ErrorCode)

	rec, env := doJSON(t, router, http.MethodPost, "/eduPortal/tracking/log", trackingBody(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 422, env.ErrorCode)
	assert.Contains(t, env.Message, "too many requests")
	assert.Len(t, repo.events, 1)
}

func TestLogEvent_ClientIPFromXForwardedFor(t *testing.T) {
	repo := &stubEventRepo{dailyErr: domain.ErrEventNotFound}
	router := setupRouter(t, repo)

	_, env := doJSON(t, router, http.MethodPost, "/eduPortal/tracking/log", trackingBody(), func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1, 10.0.0.2")
		r.Header.Set("X-Real-IP", "198.51.100.1")
	})

	require.Equal(t, 0, env.ErrorCode)
	require.Len(t, repo.events, 1)
	assert.Equal(t, "203.0.113.7", repo.events[0].ClientIP)
}

func TestLogSimpleEvent_FirstVisit_Recorded(t *testing.T) {
	repo := &stubEventRepo{dailyErr: domain.ErrEventNotFound}
	router := setupRouter(t, repo)

	rec, env := doJSON(t, router, http.MethodPost, "/eduPortal/log", map[string]any{
		"sessionId": "sess-1",
		"pagePath":  "/",
		"eventType": "visit",
	}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.ErrorCode)
	require.Len(t, repo.simpleEvents, 1)
}

func TestLogSimpleEvent_Duplicate_IdempotentSuccess(t *testing.T) {
	repo := &stubEventRepo{dailyID: 42}
	router := setupRouter(t, repo)

	rec, env := doJSON(t, router, http.MethodPost, "/eduPortal/log", map[string]any{
		"sessionId": "sess-1",
		"pagePath":  "/",
		"eventType": "visit",
	}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.ErrorCode)

	var data visitLogData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(42), data.LogID)
	assert.True(t, data.Duplicate)
	assert.Empty(t, repo.simpleEvents)
}

func TestStats_ReturnsRows(t *testing.T) {
	repo := &stubEventRepo{
		dailyErr:  domain.ErrEventNotFound,
		statsRows: []domain.EventStat{{Date: "2025-06-01", EventType: "page_view", Count: 7}},
	}
	router := setupRouter(t, repo)

	rec, env := doJSON(t, router, http.MethodGet, "/eduPortal/tracking/stats", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, env.ErrorCode)

	var stats []domain.EventStat
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	require.Len(t, stats, 1)
	assert.Equal(t, int64(7), stats[0].Count)
}

func TestGetClientIP_EchoesDerivationInputs(t *testing.T) {
	repo := &stubEventRepo{dailyErr: domain.ErrEventNotFound}
	router := setupRouter(t, repo)

	_, env := doJSON(t, router, http.MethodGet, "/eduPortal/ip", nil, func(r *http.Request) {
		r.Header.Set("X-Real-IP", "198.51.100.1")
	})

	require.Equal(t, 0, env.ErrorCode)
	var data clientIPData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "198.51.100.1", data.IP)
	assert.Equal(t, "198.51.100.1", data.Headers["x-real-ip"])
	_, err := time.Parse(time.RFC3339, data.Timestamp)
	assert.NoError(t, err)
}

func TestClientIP_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*http.Request)
		want   string
	}{
		{
			"forwarded-for wins",
			func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
				r.Header.Set("X-Real-IP", "198.51.100.1")
				r.Header.Set("CF-Connecting-IP", "198.51.100.2")
			},
			"203.0.113.7",
		},
		{
			"real-ip before client-ip",
			func(r *http.Request) {
				r.Header.Set("X-Real-IP", "198.51.100.1")
				r.Header.Set("X-Client-IP", "198.51.100.2")
			},
			"198.51.100.1",
		},
		{
			"client-ip before cloudflare",
			func(r *http.Request) {
				r.Header.Set("X-Client-IP", "198.51.100.2")
				r.Header.Set("CF-Connecting-IP", "198.51.100.3")
			},
			"198.51.100.2",
		},
		{
			"cloudflare last header",
			func(r *http.Request) { r.Header.Set("CF-Connecting-IP", "198.51.100.3") },
			"198.51.100.3",
		},
		{
			"remote addr strips mapped prefix",
			func(r *http.Request) { r.RemoteAddr = "::ffff:192.0.2.1" },
			"192.0.2.1",
		},
		{
			"remote addr strips port",
			func(r *http.Request) { r.RemoteAddr = "192.0.2.1:54321" },
			"192.0.2.1",
		},
		{
			"no information",
			func(r *http.Request) { r.RemoteAddr = "" },
			"unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.mutate(req)

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestLogEvent_EventDataBoundary(t *testing.T) {
	repo := &stubEventRepo{dailyErr: domain.ErrEventNotFound}
	router := setupRouter(t, repo)

	pad := func(n int) json.RawMessage {
		return json.RawMessage(fmt.Sprintf(`{"k":%q}`, bytes.Repeat([]byte("a"), n-8)))
	}

	body := trackingBody()
	body["eventData"] = pad(10240)
	_, env := doJSON(t, router, http.MethodPost, "/eduPortal/tracking/log", body, nil)
	assert.Equal(t, 0, env.ErrorCode)

	body = trackingBody()
	body["eventData"] = pad(10241)
	_, env = doJSON(t, router, http.MethodPost, "/eduPortal/tracking/log", body, nil)
	assert.Equal(t, 422, env.ErrorCode)
	assert.Equal(t, "event data exceeds 10KB limit", env.Message)
}
