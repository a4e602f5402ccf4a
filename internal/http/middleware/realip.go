package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the visitor address: the first public X-Forwarded-For entry,
// then X-Real-IP, then the connection address
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for _, candidate := range strings.Split(xff, ",") {
			ip := strings.TrimSpace(candidate)
			if parsed := net.ParseIP(ip); parsed != nil && !isPrivateIP(parsed) {
				return ip
			}
		}
	}

	if xRealIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); xRealIP != "" {
		if net.ParseIP(xRealIP) != nil {
			return xRealIP
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func isPrivateIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}
