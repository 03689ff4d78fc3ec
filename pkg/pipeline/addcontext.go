package pipeline

import (
	"context"
	"net/http"

	"github.com/jquante/geleit/pkg/debug"
	"github.com/jquante/geleit/pkg/observability"
	"github.com/jquante/geleit/pkg/span"
)

// spanOptions holds the configuration of the AddContext middleware.
type spanOptions struct {
	header   string
	generate func() span.ID
}

// SpanOption configures the AddContext middleware.
type SpanOption func(*spanOptions)

// WithHeader overrides the request header consulted for an existing
// correlation id. Default: span.Header.
func WithHeader(name string) SpanOption {
	return func(o *spanOptions) { o.header = name }
}

// WithGenerator overrides how fresh correlation ids are minted when the
// header is absent. Default: span.NewID.
func WithGenerator(generate func() span.ID) SpanOption {
	return func(o *spanOptions) { o.generate = generate }
}

// AddContext returns the context-injection middleware. Use it as the
// outermost request-level layer: on each request it derives the
// correlation id (the configured header's value when present and usable,
// a freshly generated id otherwise) and pushes it as the first frame
// onto the request's context before invoking the inner service.
//
// The middleware never touches the request body or headers, creates
// exactly one id per request, and passes inner errors through unchanged.
func AddContext(opts ...SpanOption) Middleware {
	o := spanOptions{header: span.Header, generate: span.NewID}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next Service) Service {
		return ServiceFunc(func(ctx context.Context, req *http.Request) (*http.Response, error) {
			id, ok := span.FromHeader(req.Header, o.header)
			source := "header"
			if !ok {
				id = o.generate()
				source = "generated"
			}
			observability.SpanIDsTotal.WithLabelValues(source).Inc()
			debug.Log("span", "span id derived", "span_id", string(id), "source", source)

			return next.Serve(span.ContextWithID(ctx, id), req)
		})
	}
}
