package utility

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

var (
	IPRateLimiter = sync.Map{}
)

// GetRealIP is a helper function to get the user's real IP address
// It checks proxy headers (like from ngrok) first.
func GetRealIP(c echo.Context) string {
	// X-Forwarded-For can be a list: "client, proxy1, proxy2"
	xForwardedFor := c.Request().Header.Get("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		return strings.TrimSpace(ips[0])
	}

	xRealIP := c.Request().Header.Get("X-Real-IP")
	if xRealIP != "" {
		return xRealIP
	}

	return c.RealIP()
}

// UserID identifies the caller for medication tracking. The app runs
// without accounts, so clients send a stable device identifier in the
// X-User-ID header; anything without one shares the "local" scope.
func UserID(c echo.Context) string {
	if id := strings.TrimSpace(c.Request().Header.Get("X-User-ID")); id != "" {
		return id
	}
	return "local"
}

// CheckIPRateLimit caps how often a single IP may hit the AI-backed
// endpoints. The window is sliding: old attempts age out as they pass
// the 15 minute mark.
func CheckIPRateLimit(ip string) error {
	now := time.Now()
	window := 15 * time.Minute
	maxAttempts := 30

	val, _ := IPRateLimiter.LoadOrStore(ip, []time.Time{})
	attempts := val.([]time.Time)

	// Remove old attempts
	var recent []time.Time
	for _, t := range attempts {
		if now.Sub(t) < window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= maxAttempts {
		return fmt.Errorf("too many attempts, please try again later")
	}

	recent = append(recent, now)
	IPRateLimiter.Store(ip, recent)
	return nil
}
