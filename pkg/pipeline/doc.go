// Package pipeline defines the service model and middleware chain of the
// geleit gateway.
//
// The pipeline has a single wire contract at two levels. A Service turns
// a request into a response ("given an input, produce an output or an
// error"); a Factory turns a connection target into a Service. Every
// layer in this package exposes and consumes that shape, so layers
// compose freely and the innermost service is the only place where a
// request actually leaves the process.
//
// # Middleware
//
// Middleware wraps a Service with cross-cutting behavior. Chain composes
// middleware with the first argument outermost; WrapFactory lifts a
// middleware stack to the factory level, wrapping every service an inner
// factory produces. The built-in middleware covers context injection
// (AddContext pushes a correlation id as the first context frame), panic
// recovery, and structured logging via log/slog.
//
// # Error handling
//
// Middleware here is a pure pass-through for errors: inner service and
// factory failures propagate unchanged, with no retries and no new error
// kinds. A request fails exactly when and however the innermost service
// fails. The lone exception is Recovery, which converts a panic into an
// error so the host keeps serving.
//
// # Concurrency
//
// No layer introduces shared mutable state: context frames are created
// fresh per request and owned by that request's call chain. Factories
// and the services they produce are safe for concurrent use; deriving a
// correlation id and pushing frames are non-blocking, so cancellation
// needs no cleanup in this package.
package pipeline
