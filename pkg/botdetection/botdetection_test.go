package botdetection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	chromeMac   = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	firefoxWin  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:120.0) Gecko/20100101 Firefox/120.0"
	safariIPhon = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	safariIPad  = "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"
)

func TestIsBotUserAgent(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		wantBot   bool
	}{
		{name: "Chrome browser", userAgent: chromeMac, wantBot: false},
		{name: "Firefox browser", userAgent: firefoxWin, wantBot: false},
		{name: "iPhone Safari", userAgent: safariIPhon, wantBot: false},
		{name: "Empty user agent", userAgent: "", wantBot: true},
		{name: "Blank user agent", userAgent: "   ", wantBot: true},
		{name: "Googlebot", userAgent: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", wantBot: true},
		{name: "Facebook crawler", userAgent: "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", wantBot: true},
		{name: "HeadlessChrome", userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/120.0.0.0 Safari/537.36", wantBot: true},
		{name: "Python requests", userAgent: "python-requests/2.28.1", wantBot: true},
		{name: "cURL", userAgent: "curl/7.68.0", wantBot: true},
		{name: "Go client", userAgent: "Go-http-client/1.1", wantBot: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBot, IsBotUserAgent(tt.userAgent))
		})
	}
}

func TestDeviceType(t *testing.T) {
	assert.Equal(t, DeviceDesktop, DeviceType(firefoxWin))
	assert.Equal(t, DeviceMobile, DeviceType(safariIPhon))
	assert.Equal(t, DeviceTablet, DeviceType(safariIPad))
	assert.Equal(t, DeviceBot, DeviceType("curl/8.0"))
	assert.Equal(t, DeviceBot, DeviceType(""))
}
