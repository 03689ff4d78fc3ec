package pipeline

import (
	"context"
	"net/http"
)

// Service is the uniform call boundary of the pipeline: given a request,
// produce a response or an error. The context carries the request's
// cancellation and deadline plus any frames pushed by outer layers;
// suspension happens only inside the innermost service, never in the
// middleware wrapping it.
//
// A Service handed to concurrent callers must be safe for concurrent
// use. The services built in this module hold no mutable state, so a
// single instance serves any number of requests.
type Service interface {
	Serve(ctx context.Context, req *http.Request) (*http.Response, error)
}

// ServiceFunc is an adapter that allows using an ordinary function as a
// Service.
type ServiceFunc func(ctx context.Context, req *http.Request) (*http.Response, error)

// Serve calls f(ctx, req).
func (f ServiceFunc) Serve(ctx context.Context, req *http.Request) (*http.Response, error) {
	return f(ctx, req)
}

// Factory produces a service for a connection target. The target is an
// opaque descriptor (for the factories in this module, an upstream base
// URL); callers invoke NewService once per connection and may reuse the
// produced service across concurrent requests on that connection.
type Factory interface {
	NewService(ctx context.Context, target string) (Service, error)
}

// FactoryFunc is an adapter that allows using an ordinary function as a
// Factory.
type FactoryFunc func(ctx context.Context, target string) (Service, error)

// NewService calls f(ctx, target).
func (f FactoryFunc) NewService(ctx context.Context, target string) (Service, error) {
	return f(ctx, target)
}
