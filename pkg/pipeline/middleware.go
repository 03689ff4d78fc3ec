package pipeline

// Middleware wraps a Service to add cross-cutting behavior.
// Middleware is applied in order: the first middleware in the chain is
// the outermost wrapper (executes first on the way in, last on the way
// out).
type Middleware func(Service) Service

// Chain composes multiple middleware into a single middleware.
// Middleware are applied in order: Chain(a, b, c) produces a(b(c(svc))).
func Chain(middlewares ...Middleware) Middleware {
	return func(next Service) Service {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
