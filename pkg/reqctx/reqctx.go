// Package reqctx provides typed, per-request context frames on top of
// context.Context.
//
// A frame is one value pushed onto a request's context under a typed key.
// Pushing never mutates earlier frames: each push wraps the previous
// context, and retrieval finds the innermost frame for a key, so a later
// push under the same key shadows an earlier one. Containers are built
// fresh per request and dropped with the request; nothing here is shared
// between requests.
//
// Each key carries the type of its value, so reading a frame needs no
// runtime type tag beyond the key itself: a *Key[T] can only store and
// yield values of type T. Packages declare one unexported key per frame
// they own and export accessor functions around it, keeping frames
// collision-free across packages.
package reqctx

import (
	"context"
	"errors"
	"fmt"
)

// ErrMissingFrame is returned by Require when a frame was never pushed
// onto the context. Callers match it with errors.Is.
var ErrMissingFrame = errors.New("missing context frame")

// Key is a typed context key for a single frame kind. Two keys never
// collide, even when created with the same type and name: identity is
// the key pointer, and the name appears only in diagnostics.
type Key[T any] struct {
	name string
}

// NewKey creates a key for frames holding values of type T. The name
// labels the frame in error messages.
func NewKey[T any](name string) *Key[T] {
	return &Key[T]{name: name}
}

// Name returns the diagnostic label of the key.
func (k *Key[T]) Name() string { return k.name }

// frame wraps the stored value so that presence is unambiguous even for
// nil pointer or nil interface values.
type frame[T any] struct {
	value T
}

// WithValue pushes v onto ctx under this key and returns the new context.
// The previous context is left untouched. Pushing always succeeds; a nil
// pointer value is a push like any other, and From will report it present.
func (k *Key[T]) WithValue(ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, k, frame[T]{value: v})
}

// From returns the most recently pushed value for this key. The second
// return is false when no frame for the key was ever pushed.
func (k *Key[T]) From(ctx context.Context) (T, bool) {
	f, ok := ctx.Value(k).(frame[T])
	return f.value, ok
}

// Require returns the most recently pushed value for this key, or an
// error wrapping ErrMissingFrame when the frame was never pushed. Use it
// where a missing frame is a programming error that should fail fast.
func (k *Key[T]) Require(ctx context.Context) (T, error) {
	v, ok := k.From(ctx)
	if !ok {
		return v, fmt.Errorf("%w: %s", ErrMissingFrame, k.name)
	}
	return v, nil
}
