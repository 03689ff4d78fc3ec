package pipeline

import "context"

// WrapFactory returns a factory that delegates to inner and wraps every
// produced service with the given middleware (first middleware
// outermost). Inner factory errors propagate unchanged; the wrapper
// introduces no error kinds of its own. The returned factory is safe for
// repeated concurrent use, one invocation per incoming connection.
func WrapFactory(inner Factory, middlewares ...Middleware) Factory {
	mw := Chain(middlewares...)
	return FactoryFunc(func(ctx context.Context, target string) (Service, error) {
		s, err := inner.NewService(ctx, target)
		if err != nil {
			return nil, err
		}
		return mw(s), nil
	})
}

// Shared adapts one already-built service into a factory that hands out
// that same instance for every target. It never fails and never consults
// an inner factory. Use it when a single long-lived service should serve
// all connections; the service must be safe for concurrent use.
func Shared(s Service) Factory {
	return FactoryFunc(func(context.Context, string) (Service, error) {
		return s, nil
	})
}
