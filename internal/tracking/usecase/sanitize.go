package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"eduportal/internal/tracking/domain"
)

// Field length ceilings shared by both ingestion paths.
const (
	maxSessionIDLen = 64
	maxUserIDLen    = 64
	maxPagePathLen  = 255
	maxPageTitleLen = 255
	maxEventTypeLen = 20
	maxReferrerLen  = 500

	maxEventDataBytes = 10240

	// Client clocks may run slightly ahead of the server.
	clockSkewAllowance = 60 * time.Second
	maxEventAge        = 365 * 24 * time.Hour
)

// sqlInjectionPattern rejects quotes, backslashes, statement separators, SQL
// comment markers and bare SQL keywords anywhere in a text field.
var sqlInjectionPattern = regexp.MustCompile(`(?i)('|\\|;|--|\bor\b|\band\b|\bunion\b|\bselect\b|\binsert\b|\bdelete\b|\bupdate\b|\bdrop\b)`)

// xssPatterns reject script/iframe elements, javascript: URLs, and inline
// event-handler attributes.
var xssPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script\b.*?</script>`),
	regexp.MustCompile(`(?is)<iframe\b.*?</iframe>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
}

// validateTrackingRequest checks required fields, the raw timestamp, and
// length ceilings for the full ingestion path. Checks short-circuit on the
// first failure.
func validateTrackingRequest(req *domain.TrackingRequest) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return domain.NewValidationError("sessionId must not be empty")
	}
	if strings.TrimSpace(req.PagePath) == "" {
		return domain.NewValidationError("pagePath must not be empty")
	}
	if strings.TrimSpace(req.EventType) == "" {
		return domain.NewValidationError("eventType must not be empty")
	}
	if req.Timestamp <= 0 {
		return domain.NewValidationError("timestamp must be a valid timestamp")
	}
	if fieldLen(req.SessionID) > maxSessionIDLen {
		return lengthError("sessionId", maxSessionIDLen)
	}
	if fieldLen(req.PagePath) > maxPagePathLen {
		return lengthError("pagePath", maxPagePathLen)
	}
	if fieldLen(req.PageTitle) > maxPageTitleLen {
		return lengthError("pageTitle", maxPageTitleLen)
	}
	if fieldLen(req.UserID) > maxUserIDLen {
		return lengthError("userId", maxUserIDLen)
	}
	if fieldLen(req.Referrer) > maxReferrerLen {
		return lengthError("referrer", maxReferrerLen)
	}
	if fieldLen(req.EventType) > maxEventTypeLen {
		return lengthError("eventType", maxEventTypeLen)
	}
	return nil
}

// validateSimpleRequest checks required fields and length ceilings for the
// simplified ingestion path.
func validateSimpleRequest(req *domain.SimpleLogRequest) error {
	if strings.TrimSpace(req.SessionID) == "" {
		return domain.NewValidationError("sessionId must not be empty")
	}
	if strings.TrimSpace(req.PagePath) == "" {
		return domain.NewValidationError("pagePath must not be empty")
	}
	if strings.TrimSpace(req.EventType) == "" {
		return domain.NewValidationError("eventType must not be empty")
	}
	if fieldLen(req.SessionID) > maxSessionIDLen {
		return lengthError("sessionId", maxSessionIDLen)
	}
	if fieldLen(req.PagePath) > maxPagePathLen {
		return lengthError("pagePath", maxPagePathLen)
	}
	if fieldLen(req.PageTitle) > maxPageTitleLen {
		return lengthError("pageTitle", maxPageTitleLen)
	}
	if fieldLen(req.UserID) > maxUserIDLen {
		return lengthError("userId", maxUserIDLen)
	}
	if fieldLen(req.EventType) > maxEventTypeLen {
		return lengthError("eventType", maxEventTypeLen)
	}
	return nil
}

// screenTrackingRequest runs the injection screen over every text field, the
// serialized eventData payload, and the timestamp sanity window.
func screenTrackingRequest(req *domain.TrackingRequest, now time.Time) error {
	textFields := []string{req.PagePath, req.PageTitle, req.Referrer, req.SessionID, req.UserID}
	if err := screenTextFields(textFields); err != nil {
		return err
	}

	if len(req.EventData) > 0 {
		payload := string(req.EventData)
		if sqlInjectionPattern.MatchString(payload) || matchesXSS(payload) {
			return domain.NewValidationError("security risk detected in event data")
		}
		if len(payload) > maxEventDataBytes {
			return domain.NewValidationError("event data exceeds 10KB limit")
		}
	}

	nowMs := now.UnixMilli()
	if req.Timestamp > nowMs+clockSkewAllowance.Milliseconds() {
		return domain.NewValidationError("timestamp must not be in the future")
	}
	if req.Timestamp < nowMs-maxEventAge.Milliseconds() {
		return domain.NewValidationError("timestamp is too far in the past")
	}
	return nil
}

// screenSimpleRequest runs the injection screen over the simplified path's
// text fields.
func screenSimpleRequest(req *domain.SimpleLogRequest) error {
	return screenTextFields([]string{req.PagePath, req.PageTitle, req.SessionID, req.UserID, req.EventType})
}

func screenTextFields(fields []string) error {
	for _, field := range fields {
		if field == "" {
			continue
		}
		if sqlInjectionPattern.MatchString(field) {
			return domain.NewValidationError("potential SQL injection detected")
		}
		if matchesXSS(field) {
			return domain.NewValidationError("potential XSS attack detected")
		}
	}
	return nil
}

func matchesXSS(s string) bool {
	for _, pattern := range xssPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// fieldLen counts characters, not bytes, after trimming: length ceilings are
// expressed in characters and multibyte titles are common.
func fieldLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func lengthError(field string, max int) error {
	return domain.NewValidationError(fmt.Sprintf("%s exceeds the %d character limit", field, max))
}

// trimToNil normalizes an optional field: whitespace-only input becomes nil.
func trimToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
