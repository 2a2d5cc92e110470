package mw

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// GinSlog logs every HTTP request through l; the level follows the response status
func GinSlog(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		req := c.Request
		path := req.URL.Path
		query := req.URL.RawQuery

		c.Next()

		lat := time.Since(start)
		status := c.Writer.Status()

		attrs := []any{
			slog.Int("status", status),
			slog.String("method", req.Method),
			slog.String("path", path),
			slog.String("route", c.FullPath()),
			slog.String("query", query),
			slog.String("ip", c.ClientIP()),
			slog.String("ua", req.UserAgent()),
			slog.Float64("latency_ms", float64(lat.Microseconds())/1000.0),
			slog.Int("size", c.Writer.Size()),
		}
		if rid := req.Header.Get("X-Request-ID"); rid != "" {
			attrs = append(attrs, slog.String("request_id", rid))
		}
		if action, ok := c.Get(ActionKey); ok {
			attrs = append(attrs, slog.Any("action", action))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.ByType(gin.ErrorTypeAny).String()))
		}

		switch {
		case status >= 500:
			l.Error("http request", attrs...)
		case status >= 400:
			l.Warn("http request", attrs...)
		default:
			l.Info("http request", attrs...)
		}
	}
}

// ActionKey - gin context key under which handlers store the reconciliation action
const ActionKey = "reconcile_action"
