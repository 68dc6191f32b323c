package util

import (
	"net"
	"strings"
)

// ExtractIPAddress resolves the client IP from X-Forwarded-For (first hop
// wins) or RemoteAddr, stripping any port.
func ExtractIPAddress(remoteAddr string, xForwardedFor string) string {
	if xForwardedFor != "" {
		ip := strings.TrimSpace(strings.Split(xForwardedFor, ",")[0])
		if host, _, err := net.SplitHostPort(ip); err == nil {
			return host
		}
		if ip != "" {
			return ip
		}
	}

	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
