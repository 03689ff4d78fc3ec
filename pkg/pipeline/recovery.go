package pipeline

import (
	"context"
	"fmt"
	"net/http"
)

// Recovery returns middleware that catches panics in the wrapped service
// and converts them to ordinary errors, so one panicking request does
// not take down the host's accept loop.
func Recovery() Middleware {
	return func(next Service) Service {
		return ServiceFunc(func(ctx context.Context, req *http.Request) (resp *http.Response, retErr error) {
			defer func() {
				if r := recover(); r != nil {
					resp = nil
					retErr = fmt.Errorf("panic serving request: %v", r)
				}
			}()
			return next.Serve(ctx, req)
		})
	}
}
