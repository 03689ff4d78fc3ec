package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jquante/geleit/pkg/debug"
	"github.com/jquante/geleit/pkg/observability"
	"github.com/jquante/geleit/pkg/pipeline"
	"github.com/jquante/geleit/pkg/span"
)

// ProxyFactory returns a factory whose services forward requests to the
// upstream named by the connection target, an absolute base URL. The
// factory fails only on an unusable target; the produced services return
// the upstream's response unchanged and propagate transport errors to
// the caller.
//
// When nil, client defaults to http.DefaultClient.
func ProxyFactory(client *http.Client) pipeline.Factory {
	if client == nil {
		client = http.DefaultClient
	}
	return pipeline.FactoryFunc(func(_ context.Context, target string) (pipeline.Service, error) {
		base, err := url.Parse(target)
		if err != nil {
			return nil, fmt.Errorf("parsing upstream url %q: %w", target, err)
		}
		if base.Scheme == "" || base.Host == "" {
			return nil, fmt.Errorf("upstream url %q: missing scheme or host", target)
		}
		return &proxyService{base: base, client: client}, nil
	})
}

// proxyService forwards requests to a fixed upstream base URL. It holds
// no mutable state and is safe for concurrent use.
type proxyService struct {
	base   *url.URL
	client *http.Client
}

func (p *proxyService) Serve(ctx context.Context, req *http.Request) (*http.Response, error) {
	out := req.Clone(ctx)
	out.URL.Scheme = p.base.Scheme
	out.URL.Host = p.base.Host
	out.URL.Path = joinURLPath(p.base.Path, req.URL.Path)
	out.Host = ""
	// Inbound server requests carry RequestURI; client requests must not.
	out.RequestURI = ""
	removeHopHeaders(out.Header)

	// Propagate the correlation id to the upstream.
	if id, ok := span.IDFromContext(ctx); ok {
		out.Header.Set(span.Header, string(id))
	}

	debug.Log("proxy", "forwarding request", "method", out.Method, "url", out.URL.String())

	resp, err := p.client.Do(out)
	if err != nil {
		observability.UpstreamRequestsTotal.WithLabelValues("error").Inc()
		debug.Log("proxy", "forward failed", "error", debug.Truncate(err.Error(), 200))
		return nil, fmt.Errorf("forwarding to %s: %w", p.base.Host, err)
	}
	observability.UpstreamRequestsTotal.WithLabelValues(statusClass(resp.StatusCode)).Inc()
	debug.Log("proxy", "upstream response", "status", resp.StatusCode)

	removeHopHeaders(resp.Header)
	return resp, nil
}

// statusClass renders a status code as its class label, like "2xx".
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// joinURLPath joins a base path and a request path with exactly one
// slash between them.
func joinURLPath(base, req string) string {
	if base == "" || base == "/" {
		if req == "" {
			return "/"
		}
		return req
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(req, "/") {
		req = "/" + req
	}
	return base + req
}

// hopHeaders are connection-level headers stripped from forwarded
// requests and upstream responses (RFC 9110, section 7.6.1).
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

func removeHopHeaders(h http.Header) {
	for _, name := range hopHeaders {
		h.Del(name)
	}
}
