package pipeline

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jquante/geleit/pkg/span"
)

// Logging returns middleware that emits a structured log entry for each
// request. The entry includes the span id (from context, so place this
// layer inside AddContext), method, path, duration, and the response
// status or error.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Service) Service {
		return ServiceFunc(func(ctx context.Context, req *http.Request) (*http.Response, error) {
			start := time.Now()

			resp, err := next.Serve(ctx, req)

			id, _ := span.IDFromContext(ctx)
			attrs := []slog.Attr{
				slog.String("span_id", string(id)),
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Duration("duration", time.Since(start)),
			}

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(ctx, slog.LevelError, "request failed", attrs...)
			} else {
				attrs = append(attrs, slog.Int("status", resp.StatusCode))
				logger.LogAttrs(ctx, slog.LevelInfo, "request completed", attrs...)
			}

			return resp, err
		})
	}
}
