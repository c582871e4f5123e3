package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"eduportal/internal/tracking/domain"
	"eduportal/internal/tracking/usecase"
	"eduportal/pkg/apiresponse"
)

// Handler exposes the telemetry ingestion endpoints.
type Handler struct {
	tracking  *usecase.TrackingService
	simpleLog *usecase.SimpleLogService
	logger    *zap.Logger
}

// NewHandler creates a tracking Handler.
func NewHandler(tracking *usecase.TrackingService, simpleLog *usecase.SimpleLogService, logger *zap.Logger) *Handler {
	return &Handler{
		tracking:  tracking,
		simpleLog: simpleLog,
		logger:    logger,
	}
}

// trackingData is the success payload for ingestion responses.
type trackingData struct {
	TrackingID int64 `json:"trackingId"`
}

type visitLogData struct {
	LogID     int64 `json:"logId"`
	Duplicate bool  `json:"duplicate,omitempty"`
}

// LogEvent handles POST /eduPortal/tracking/log, the full ingestion path.
func (h *Handler) LogEvent(w http.ResponseWriter, r *http.Request) {
	var req domain.TrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiresponse.Write(w, apiresponse.ValidationError("request body must be valid JSON"))
		return
	}

	result, err := h.tracking.LogEvent(r.Context(), &req, clientIP(r), r.UserAgent())
	if err != nil {
		h.writeError(w, err)
		return
	}

	apiresponse.Write(w, apiresponse.Success(trackingData{TrackingID: result.TrackingID}, result.Message))
}

// LogSimpleEvent handles POST /eduPortal/log, the once-per-day visit path.
func (h *Handler) LogSimpleEvent(w http.ResponseWriter, r *http.Request) {
	var req domain.SimpleLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiresponse.Write(w, apiresponse.ValidationError("request body must be valid JSON"))
		return
	}

	result, err := h.simpleLog.LogSimpleEvent(r.Context(), &req, clientIP(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	apiresponse.Write(w, apiresponse.Success(visitLogData{LogID: result.LogID, Duplicate: result.Duplicate}, result.Message))
}

// Stats handles GET /eduPortal/tracking/stats, the 7-day ingestion counts.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tracking.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if stats == nil {
		stats = []domain.EventStat{}
	}
	apiresponse.Write(w, apiresponse.Success(stats, "success"))
}

// clientIPData is the diagnostic echo payload.
type clientIPData struct {
	IP        string            `json:"ip"`
	UserAgent string            `json:"userAgent"`
	Timestamp string            `json:"timestamp"`
	Headers   map[string]string `json:"headers"`
}

// GetClientIP handles GET /eduPortal/ip. It echoes the derived address plus
// the raw proxy headers so operators can verify the derivation chain.
func (h *Handler) GetClientIP(w http.ResponseWriter, r *http.Request) {
	headers := map[string]string{
		"x-forwarded-for":  r.Header.Get("X-Forwarded-For"),
		"x-real-ip":        r.Header.Get("X-Real-IP"),
		"x-client-ip":      r.Header.Get("X-Client-IP"),
		"cf-connecting-ip": r.Header.Get("CF-Connecting-IP"),
		"remote-addr":      r.RemoteAddr,
	}
	apiresponse.Write(w, apiresponse.Success(clientIPData{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
		Timestamp: time.Now().Format(time.RFC3339),
		Headers:   headers,
	}, "success"))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		apiresponse.Write(w, apiresponse.ValidationError(verr.Message))
		return
	}
	var rerr *domain.RateLimitError
	if errors.As(err, &rerr) {
		apiresponse.Write(w, apiresponse.ValidationError(rerr.Message))
		return
	}
	h.logger.Error("tracking request failed", zap.Error(err))
	apiresponse.Write(w, apiresponse.ServerError(""))
}
