package domain

import (
	"encoding/json"
	"time"
)

// BrowserInfo describes the client browser as reported by the frontend SDK.
type BrowserInfo struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Language string `json:"language"`
}

// OSInfo describes the client operating system.
type OSInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DeviceInfo carries optional hardware descriptors.
type DeviceInfo struct {
	DeviceType          string   `json:"deviceType"`
	DeviceMemory        *float64 `json:"deviceMemory"`
	HardwareConcurrency *int     `json:"hardwareConcurrency"`
}

// ScreenInfo carries optional display descriptors.
type ScreenInfo struct {
	Width      *int     `json:"width"`
	Height     *int     `json:"height"`
	ColorDepth *int     `json:"colorDepth"`
	PixelRatio *float64 `json:"pixelRatio"`
}

// TrackingRequest is the full-ingestion payload. The clientIp field is
// accepted on the wire but always discarded in favor of the server-derived
// address.
type TrackingRequest struct {
	UserID      string          `json:"userId"`
	SessionID   string          `json:"sessionId"`
	EventType   string          `json:"eventType"`
	PagePath    string          `json:"pagePath"`
	PageTitle   string          `json:"pageTitle"`
	Referrer    string          `json:"referrer"`
	UserAgent   string          `json:"userAgent"`
	ClientIP    string          `json:"clientIp"`
	DeviceInfo  *DeviceInfo     `json:"deviceInfo"`
	BrowserInfo *BrowserInfo    `json:"browserInfo"`
	OSInfo      *OSInfo         `json:"osInfo"`
	ScreenInfo  *ScreenInfo     `json:"screenInfo"`
	Timestamp   int64           `json:"timestamp"`
	EventData   json.RawMessage `json:"eventData"`
}

// SimpleLogRequest is the reduced payload accepted by the once-per-day
// visit-logging path.
type SimpleLogRequest struct {
	UserID      string       `json:"userId"`
	SessionID   string       `json:"sessionId"`
	EventType   string       `json:"eventType"`
	PagePath    string       `json:"pagePath"`
	PageTitle   string       `json:"pageTitle"`
	BrowserInfo *BrowserInfo `json:"browserInfo"`
	OSInfo      *OSInfo      `json:"osInfo"`
}

// TrackingEvent is a sanitized full event ready for persistence. Optional
// fields are nil when the client omitted them or sent blanks.
type TrackingEvent struct {
	UserID              *string
	SessionID           string
	EventType           string
	PagePath            string
	PageTitle           *string
	Referrer            *string
	UserAgent           *string
	ClientIP            string
	DeviceType          *string
	DeviceMemory        *float64
	HardwareConcurrency *int
	BrowserName         *string
	BrowserVersion      *string
	BrowserLanguage     *string
	OSName              *string
	OSVersion           *string
	ScreenWidth         *int
	ScreenHeight        *int
	ColorDepth          *int
	PixelRatio          *float64
	EventTimestamp      int64
	EventData           *string
	Status              int
	CreatedTimes        time.Time
}

// SimpleEvent is the reduced-column write shape sharing the event_tracking
// table with TrackingEvent.
type SimpleEvent struct {
	UserID          *string
	SessionID       string
	EventType       string
	PagePath        string
	PageTitle       *string
	ClientIP        string
	BrowserName     *string
	BrowserVersion  *string
	BrowserLanguage *string
	OSName          *string
	OSVersion       *string
	EventTimestamp  int64
	Status          int
	CreatedTimes    time.Time
}

// EventStat is one row of the 7-day ingestion statistics.
type EventStat struct {
	Date      string `json:"date"`
	EventType string `json:"eventType"`
	Count     int64  `json:"count"`
}
