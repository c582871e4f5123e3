package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"eduportal/internal/tracking/domain"
)

// TrackingResult is the outcome of a full-event ingestion attempt.
type TrackingResult struct {
	TrackingID int64
	Message    string
}

// TrackingService owns the full-event ingestion pipeline: rate limiting,
// validation, screening, enrichment and persistence.
type TrackingService struct {
	repo    EventRepository
	limiter *RateLimiter
	logger  *zap.Logger
	now     func() time.Time
}

// NewTrackingService creates a TrackingService backed by the given
// repository and rate limiter.
func NewTrackingService(repo EventRepository, limiter *RateLimiter, logger *zap.Logger) *TrackingService {
	return &TrackingService{
		repo:    repo,
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}

// LogEvent runs one tracking payload through the full ingestion pipeline.
// clientIP is the server-derived address; the payload's own clientIp field
// is never trusted. userAgent is the raw request header, used to backfill
// browser, OS and device fields the client left empty.
func (s *TrackingService) LogEvent(ctx context.Context, req *domain.TrackingRequest, clientIP, userAgent string) (*TrackingResult, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if allowed, msg := s.limiter.Check(clientIP, sessionID); !allowed {
		s.logger.Warn("tracking request rate limited",
			zap.String("client_ip", clientIP),
			zap.String("session_id", sessionID))
		return nil, &domain.RateLimitError{Message: msg}
	}

	now := s.now()
	if err := validateTrackingRequest(req); err != nil {
		return nil, err
	}
	if err := screenTrackingRequest(req, now); err != nil {
		return nil, err
	}

	ev := buildTrackingEvent(req, clientIP, now)
	if ev.UserAgent == nil {
		ev.UserAgent = trimToNil(userAgent)
	}
	uaSource := userAgent
	if ev.UserAgent != nil {
		uaSource = *ev.UserAgent
	}
	enrichFromUserAgent(ev, uaSource)

	id, err := s.repo.InsertEvent(ctx, ev)
	if err != nil {
		s.logger.Error("failed to persist tracking event",
			zap.String("session_id", req.SessionID),
			zap.String("event_type", req.EventType),
			zap.Error(err))
		return nil, err
	}

	s.limiter.Update(clientIP, sessionID)

	s.logger.Debug("tracking event recorded",
		zap.Int64("tracking_id", id),
		zap.String("event_type", req.EventType))

	return &TrackingResult{TrackingID: id, Message: "tracking data recorded"}, nil
}

// Stats returns per-day, per-type ingestion counts for the last seven days.
func (s *TrackingService) Stats(ctx context.Context) ([]domain.EventStat, error) {
	since := s.now().AddDate(0, 0, -7)
	stats, err := s.repo.EventStats(ctx, since)
	if err != nil {
		s.logger.Error("failed to load tracking stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// buildTrackingEvent maps a screened request onto the persistence shape,
// trimming required fields and dropping blank optionals and the
// client-supplied IP.
func buildTrackingEvent(req *domain.TrackingRequest, clientIP string, now time.Time) *domain.TrackingEvent {
	ev := &domain.TrackingEvent{
		UserID:         trimToNil(req.UserID),
		SessionID:      strings.TrimSpace(req.SessionID),
		EventType:      strings.TrimSpace(req.EventType),
		PagePath:       strings.TrimSpace(req.PagePath),
		PageTitle:      trimToNil(req.PageTitle),
		Referrer:       trimToNil(req.Referrer),
		UserAgent:      trimToNil(req.UserAgent),
		ClientIP:       clientIP,
		EventTimestamp: req.Timestamp,
		Status:         1,
		CreatedTimes:   now,
	}

	if req.BrowserInfo != nil {
		ev.BrowserName = trimToNil(req.BrowserInfo.Name)
		ev.BrowserVersion = trimToNil(req.BrowserInfo.Version)
		ev.BrowserLanguage = trimToNil(req.BrowserInfo.Language)
	}
	if req.OSInfo != nil {
		ev.OSName = trimToNil(req.OSInfo.Name)
		ev.OSVersion = trimToNil(req.OSInfo.Version)
	}
	if req.DeviceInfo != nil {
		ev.DeviceType = trimToNil(req.DeviceInfo.DeviceType)
		ev.DeviceMemory = req.DeviceInfo.DeviceMemory
		ev.HardwareConcurrency = req.DeviceInfo.HardwareConcurrency
	}
	if req.ScreenInfo != nil {
		ev.ScreenWidth = req.ScreenInfo.Width
		ev.ScreenHeight = req.ScreenInfo.Height
		ev.ColorDepth = req.ScreenInfo.ColorDepth
		ev.PixelRatio = req.ScreenInfo.PixelRatio
	}
	if len(req.EventData) > 0 {
		data := string(req.EventData)
		ev.EventData = &data
	}

	return ev
}
