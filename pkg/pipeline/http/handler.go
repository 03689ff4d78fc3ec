// Package http bridges the geleit pipeline to net/http: it serves a
// pipeline.Service as an http.Handler, provides a factory that forwards
// requests to an upstream, and wraps the server lifecycle.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/jquante/geleit/pkg/pipeline"
	"github.com/jquante/geleit/pkg/span"
)

// handlerOptions holds the configuration of the bridge handler.
type handlerOptions struct {
	spanHeader string
}

// HandlerOption configures Handler.
type HandlerOption func(*handlerOptions)

// WithSpanHeader overrides the header echoed back to the client. Use it
// when the pipeline's context-injection layer reads a non-default
// header. Default: span.Header.
func WithSpanHeader(name string) HandlerOption {
	return func(o *handlerOptions) { o.spanHeader = name }
}

// Handler serves a pipeline service over net/http. Each request is
// dispatched with its own context as the base; the response's status,
// headers, and body are copied to the client unchanged.
//
// The span id is echoed as a response header before the first write: the
// inbound header value when the client supplied one, otherwise whatever
// the service chain put on the response (the proxy copies the upstream's
// echo back). A header already set by the service wins.
func Handler(s pipeline.Service, opts ...HandlerOption) http.Handler {
	o := handlerOptions{spanHeader: span.Header}
	for _, opt := range opts {
		opt(&o)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &spanHeaderWriter{ResponseWriter: w, r: r, header: o.spanHeader}

		resp, err := s.Serve(r.Context(), r)
		if err != nil {
			writeServiceError(sw, r, err)
			return
		}
		defer resp.Body.Close()

		copyHeader(sw.Header(), resp.Header)
		sw.WriteHeader(resp.StatusCode)
		io.Copy(sw, resp.Body)
	})
}

// copyHeader adds all values of src to dst.
func copyHeader(dst, src http.Header) {
	for k, vv := range src {
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}

// writeServiceError maps a service error to a JSON error response.
// Transport-level failures reaching the upstream surface as 502; all
// other failures as 500. Nothing is written when the client is gone.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
		return
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		WriteError(w, http.StatusBadGateway, &Error{Type: ErrorTypeUpstream, Message: err.Error()})
		return
	}
	WriteError(w, http.StatusInternalServerError, &Error{Type: ErrorTypeServer, Message: err.Error()})
}

// spanHeaderWriter wraps http.ResponseWriter to inject the span id
// header before the first write.
type spanHeaderWriter struct {
	http.ResponseWriter
	r           *http.Request
	header      string
	headersSent bool
}

func (w *spanHeaderWriter) WriteHeader(statusCode int) {
	w.ensureSpanHeader()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *spanHeaderWriter) Write(b []byte) (int, error) {
	w.ensureSpanHeader()
	return w.ResponseWriter.Write(b)
}

func (w *spanHeaderWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the underlying ResponseWriter for http.NewResponseController.
func (w *spanHeaderWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *spanHeaderWriter) ensureSpanHeader() {
	if w.headersSent {
		return
	}
	w.headersSent = true
	if w.Header().Get(w.header) != "" {
		return
	}
	if id, ok := span.FromHeader(w.r.Header, w.header); ok {
		w.Header().Set(w.header, string(id))
	}
}
