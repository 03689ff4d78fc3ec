// Package span derives per-request correlation identifiers and threads
// them through request contexts.
//
// A span id is an opaque string, one per request. It is read from a
// designated inbound header when the client supplied one, and generated
// fresh otherwise, so every request processed by the pipeline carries
// exactly one id. The id is a plain value: deriving it never fails and
// holds no resources.
package span

import (
	"context"
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jquante/geleit/pkg/reqctx"
)

// Header is the designated request header consulted for an existing
// correlation id. Lookup is case-insensitive; the first value is used
// when the header is repeated.
const Header = "X-Span-Id"

// ID is an opaque per-request correlation identifier.
type ID string

// String returns the id as a plain string.
func (id ID) String() string { return string(id) }

// NewID generates a fresh universally-unique identifier: a 128-bit
// random UUID in canonical string form.
func NewID() ID {
	return ID(uuid.NewString())
}

// FromHeader returns the id carried in the named header of h. The second
// return is false when the header is absent, empty, or not valid UTF-8;
// such values are treated as absent so derivation can fall back to a
// generated id.
func FromHeader(h http.Header, name string) (ID, bool) {
	v := h.Get(name)
	if v == "" || !utf8.ValidString(v) {
		return "", false
	}
	return ID(v), true
}

// FromRequest derives the correlation id for a request: the value of the
// Header header when present and usable, byte-for-byte, and a freshly
// generated id otherwise. It never fails and does not write the id back
// onto the request or response; propagation is left to the caller.
func FromRequest(r *http.Request) ID {
	if id, ok := FromHeader(r.Header, Header); ok {
		return id
	}
	return NewID()
}

// idKey is the context frame for the correlation id.
var idKey = reqctx.NewKey[ID]("span id")

// ContextWithID pushes the correlation id onto ctx.
func ContextWithID(ctx context.Context, id ID) context.Context {
	return idKey.WithValue(ctx, id)
}

// IDFromContext returns the correlation id pushed onto ctx, or false
// when no id frame is present.
func IDFromContext(ctx context.Context) (ID, bool) {
	return idKey.From(ctx)
}

// RequireID returns the correlation id pushed onto ctx, or an error
// wrapping reqctx.ErrMissingFrame when the frame was never pushed.
func RequireID(ctx context.Context) (ID, error) {
	return idKey.Require(ctx)
}
