package websocket

import (
	"net"
	"net/url"
	"strconv"
	"strings"
)

// AllowedOrigins accepts a fixed list of origins plus loopback origins on the
// server's own port. A "*" entry accepts any http or https origin.
type AllowedOrigins struct {
	Origins []string
	Port    int
}

// IsAllowedOrigin implements OriginValidator.
func (a AllowedOrigins) IsAllowedOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	for _, allowed := range a.Origins {
		if allowed == "*" || strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}

	host, port, err := net.SplitHostPort(u.Host)
	if err != nil {
		host = u.Host
		port = ""
	}
	if host != "localhost" && host != "127.0.0.1" && host != "::1" {
		return false
	}
	return port == strconv.Itoa(a.Port)
}
