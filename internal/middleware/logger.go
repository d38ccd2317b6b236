package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

// RequestIDKey is the header carrying the request correlation ID.
const RequestIDKey = "X-Request-ID"

// Logger logs each request with a correlation ID, skipping health probes.
func Logger() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())

		skip := path == "/" || path == "/health"

		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		var logger *slog.Logger
		if !skip {
			logger = slog.Default().With(
				"request_id", requestID,
				"method", string(c.Method()),
				"path", path,
			)
			logger.Info("request started")
		}

		c.Next(ctx)

		if !skip {
			latency := time.Since(start)
			status := c.Response.StatusCode()

			logger = logger.With(
				"status", status,
				"latency_ms", latency.Milliseconds(),
			)
			switch {
			case status >= 500:
				logger.Error("request completed with server error")
			case status >= 400:
				logger.Warn("request completed with client error")
			default:
				logger.Info("request completed")
			}
		}
	}
}

// GetRequestID returns the correlation ID assigned to this request.
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}
