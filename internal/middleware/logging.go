package middleware

import (
	"strings"
	"time"

	"prestige-properties/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one access line per request. Server errors log at ERROR and
// client errors at WARN; requests under a quiet prefix (assets, health, metrics) are only
// logged when they fail.
func RequestLogger(quiet ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path
		if status < 400 && hasAnyPrefix(path, quiet) {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		session := SessionID(c)
		if len(session) > 8 {
			session = session[:8]
		}

		format := "%s %s route=%s status=%d latency=%v locale=%s session=%s"
		args := []interface{}{c.Request.Method, path, route, status, time.Since(start), Locale(c).Code, session}
		switch {
		case status >= 500:
			logger.GlobalLogger.Errorf(format, args...)
		case status >= 400:
			logger.GlobalLogger.Warnf(format, args...)
		default:
			logger.GlobalLogger.Printf(format, args...)
		}
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
