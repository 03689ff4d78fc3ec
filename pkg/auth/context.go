package auth

import (
	"context"

	"github.com/jquante/geleit/pkg/reqctx"
)

// authorizationKey is the context frame for the granted authorization.
// The frame value is a pointer so that an explicit "no grant recorded"
// (a pushed nil) is distinguishable from a frame that was never pushed.
var authorizationKey = reqctx.NewKey[*Authorization]("authorization")

// ContextWithAuthorization pushes the granted authorization onto ctx.
// Pushing nil records that an identity layer ran and granted nothing.
func ContextWithAuthorization(ctx context.Context, a *Authorization) context.Context {
	return authorizationKey.WithValue(ctx, a)
}

// AuthorizationFromContext returns the authorization pushed onto ctx.
// The second return is false when no identity layer ran; a true with a
// nil record means a layer ran and declined to grant.
func AuthorizationFromContext(ctx context.Context) (*Authorization, bool) {
	return authorizationKey.From(ctx)
}

// RequireAuthorization returns the authorization pushed onto ctx, or an
// error wrapping reqctx.ErrMissingFrame when no identity layer ran.
func RequireAuthorization(ctx context.Context) (*Authorization, error) {
	return authorizationKey.Require(ctx)
}
