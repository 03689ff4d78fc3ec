// Package allowall provides a permissive stand-in identity layer that
// grants every request a fixed subject with all scopes.
//
// It performs no credential validation: the layer exists for tests and
// for deployments where access control is enforced elsewhere. It is
// structurally identical to a genuine identity layer, pushing the same
// *auth.Authorization frame, so swapping in a real authenticator touches
// no other layer.
package allowall

import (
	"context"
	"net/http"

	"github.com/jquante/geleit/pkg/auth"
	"github.com/jquante/geleit/pkg/observability"
	"github.com/jquante/geleit/pkg/pipeline"
)

// Middleware returns an identity layer that unconditionally pushes an
// authorization record with the configured subject, all scopes granted,
// and no issuer, regardless of request content. It raises no errors of
// its own; inner service errors propagate unchanged.
func Middleware(subject string) pipeline.Middleware {
	return func(next pipeline.Service) pipeline.Service {
		return pipeline.ServiceFunc(func(ctx context.Context, req *http.Request) (*http.Response, error) {
			grant := &auth.Authorization{
				Subject: subject,
				Scopes:  auth.AllScopes(),
			}
			observability.IdentityGrantsTotal.WithLabelValues(subject).Inc()

			return next.Serve(auth.ContextWithAuthorization(ctx, grant), req)
		})
	}
}

// Factory wraps an inner factory so that every service it produces
// carries the allow-all identity layer. Inner factory errors propagate
// unchanged.
func Factory(inner pipeline.Factory, subject string) pipeline.Factory {
	return pipeline.WrapFactory(inner, Middleware(subject))
}
