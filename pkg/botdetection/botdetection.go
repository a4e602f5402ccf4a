package botdetection

import (
	"strings"

	"github.com/mileusna/useragent"
)

// Device types reported by DeviceType
const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"
	DeviceBot     = "Bot"
	DeviceUnknown = "Unknown"
)

// automation tools and headless browsers that useragent does not flag as bots
var botPatterns = []string{
	"bot",
	"crawler",
	"spider",
	"scanner",
	"headlesschrome",
	"phantomjs",
	"selenium",
	"puppeteer",
	"playwright",
	"lighthouse",
	"facebookexternalhit",
	"python-requests",
	"python-urllib",
	"curl",
	"wget",
	"go-http-client",
	"okhttp",
	"axios",
	"node-fetch",
	"postman",
}

// IsBotUserAgent reports whether a tracked request comes from a crawler or an automated client.
// An empty user agent counts as a bot.
func IsBotUserAgent(userAgent string) bool {
	if strings.TrimSpace(userAgent) == "" {
		return true
	}

	if useragent.Parse(userAgent).Bot {
		return true
	}

	ua := strings.ToLower(userAgent)
	for _, pattern := range botPatterns {
		if strings.Contains(ua, pattern) {
			return true
		}
	}
	return false
}

// DeviceType classifies a user agent into one of the Device* constants
func DeviceType(userAgent string) string {
	if IsBotUserAgent(userAgent) {
		return DeviceBot
	}

	ua := useragent.Parse(userAgent)
	switch {
	case ua.Tablet:
		return DeviceTablet
	case ua.Mobile:
		return DeviceMobile
	case ua.Desktop:
		return DeviceDesktop
	default:
		return DeviceUnknown
	}
}
