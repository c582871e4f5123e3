package usecase

import (
	ua "github.com/mileusna/useragent"

	"eduportal/internal/tracking/domain"
)

// enrichFromUserAgent fills browser, OS and device fields the client did not
// report by parsing the raw User-Agent header. Client-reported values win.
func enrichFromUserAgent(ev *domain.TrackingEvent, uaString string) {
	if uaString == "" {
		return
	}

	parsed := ua.Parse(uaString)

	if ev.BrowserName == nil && parsed.Name != "" {
		ev.BrowserName = trimToNil(parsed.Name)
	}
	if ev.BrowserVersion == nil && parsed.Version != "" {
		ev.BrowserVersion = trimToNil(parsed.Version)
	}
	if ev.OSName == nil && parsed.OS != "" {
		ev.OSName = trimToNil(parsed.OS)
	}
	if ev.OSVersion == nil && parsed.OSVersion != "" {
		ev.OSVersion = trimToNil(parsed.OSVersion)
	}
	if ev.DeviceType == nil {
		ev.DeviceType = trimToNil(detectDeviceType(parsed))
	}
}

// detectDeviceType maps a parsed User-Agent to a coarse device class.
func detectDeviceType(parsed ua.UserAgent) string {
	switch {
	case parsed.Bot:
		return "Bot"
	case parsed.Tablet:
		return "Tablet"
	case parsed.Mobile:
		return "Mobile"
	case parsed.Desktop:
		return "Desktop"
	default:
		return "Unknown"
	}
}
