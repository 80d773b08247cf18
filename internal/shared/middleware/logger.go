package middleware

import (
	"log/slog"
	"net/url"
	"time"

	sharedContext "github.com/artfriendly/go-api-server/internal/shared/context"
	"github.com/artfriendly/go-api-server/internal/shared/logger"
	"github.com/artfriendly/go-api-server/internal/shared/metrics"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware returns a gin middleware for structured logging with slog
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// request_id가 바인딩된 logger를 context에 저장 (handler/service/repository에서 사용)
		reqLogger := slog.Default().With("request_id", GetRequestID(c))
		ctx := logger.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// health/metrics 호출은 로그에서 제외
		if metrics.ShouldSkipEndpoint(path) && c.Writer.Status() < 400 {
			return
		}

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}

		if raw != "" {
			fields = append(fields, "query", maskQuery(raw))
		}
		if memberID, ok := sharedContext.GetMemberID(c); ok {
			fields = append(fields, "member_id", memberID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		msg := "Request processed"
		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}

// sensitiveParams carry one-time OAuth values that must not reach the logs
var sensitiveParams = []string{"code", "state"}

func maskQuery(raw string) string {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return "unparsable"
	}

	for _, key := range sensitiveParams {
		for i, v := range values[key] {
			values[key][i] = logger.MaskSecret(v)
		}
	}
	return values.Encode()
}
