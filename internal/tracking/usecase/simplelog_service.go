package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"eduportal/internal/tracking/domain"
)

// SimpleLogResult is the outcome of a simplified visit-log attempt.
type SimpleLogResult struct {
	LogID     int64
	Duplicate bool
	Message   string
}

// SimpleLogService handles the reduced once-per-day visit-logging path.
// A visitor produces at most one valid row per calendar day; repeated
// submissions succeed idempotently with the existing row's id.
type SimpleLogService struct {
	repo   EventRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewSimpleLogService creates a SimpleLogService.
func NewSimpleLogService(repo EventRepository, logger *zap.Logger) *SimpleLogService {
	return &SimpleLogService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// LogSimpleEvent validates, screens and records one simplified visit event.
// Duplicate detection is keyed by user id when present, otherwise by the
// (client IP, session) pair. A failing duplicate query is logged and
// ignored so that telemetry keeps flowing.
func (s *SimpleLogService) LogSimpleEvent(ctx context.Context, req *domain.SimpleLogRequest, clientIP string) (*SimpleLogResult, error) {
	if err := validateSimpleRequest(req); err != nil {
		return nil, err
	}
	if err := screenSimpleRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	from, to := dayBounds(now)

	userID := strings.TrimSpace(req.UserID)
	sessionID := strings.TrimSpace(req.SessionID)
	var (
		existingID int64
		err        error
	)
	if userID != "" {
		existingID, err = s.repo.FindDailyEventByUser(ctx, userID, from, to)
	} else {
		existingID, err = s.repo.FindDailyEventByClient(ctx, clientIP, sessionID, from, to)
	}
	switch {
	case err == nil:
		return &SimpleLogResult{
			LogID:     existingID,
			Duplicate: true,
			Message:   "already recorded today",
		}, nil
	case errors.Is(err, domain.ErrEventNotFound):
		// first visit today
	default:
		s.logger.Warn("duplicate check failed, recording anyway",
			zap.String("session_id", req.SessionID),
			zap.Error(err))
	}

	ev := buildSimpleEvent(req, clientIP, now)
	id, err := s.repo.InsertSimpleEvent(ctx, ev)
	if err != nil {
		s.logger.Error("failed to persist visit log",
			zap.String("session_id", req.SessionID),
			zap.Error(err))
		return nil, err
	}

	return &SimpleLogResult{LogID: id, Message: "visit recorded"}, nil
}

// dayBounds returns the local-time [midnight, next midnight) interval
// containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 0, 1)
}

func buildSimpleEvent(req *domain.SimpleLogRequest, clientIP string, now time.Time) *domain.SimpleEvent {
	ev := &domain.SimpleEvent{
		UserID:         trimToNil(req.UserID),
		SessionID:      strings.TrimSpace(req.SessionID),
		EventType:      strings.TrimSpace(req.EventType),
		PagePath:       strings.TrimSpace(req.PagePath),
		PageTitle:      trimToNil(req.PageTitle),
		ClientIP:       clientIP,
		EventTimestamp: now.UnixMilli(),
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
	return ev
}
