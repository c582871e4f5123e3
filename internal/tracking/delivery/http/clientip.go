package http

import (
	"net"
	"net/http"
	"strings"
)

// clientIP derives the visitor's address from proxy headers, falling back to
// the socket peer. Precedence follows the reverse-proxy chain in front of
// the portal: X-Forwarded-For carries the original client first, then the
// single-value headers set by nginx and Cloudflare.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}

	for _, header := range []string{"X-Real-IP", "X-Client-IP", "CF-Connecting-IP"} {
		if ip := strings.TrimSpace(r.Header.Get(header)); ip != "" {
			return ip
		}
	}

	addr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	addr = strings.TrimPrefix(addr, "::ffff:")
	if addr == "" {
		return "unknown"
	}
	return addr
}
