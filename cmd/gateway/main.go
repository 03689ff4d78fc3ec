// Command gateway runs the geleit request-context gateway.
//
// The gateway stamps every inbound request with a correlation id, grants
// a fixed identity via the allow-all layer, and forwards the request to
// the configured upstream. Without an upstream it serves a built-in
// status responder that reports the span id and granted subject.
//
// Configuration is loaded from an optional YAML file (-config flag or
// GELEIT_CONFIG) with GELEIT_* environment overrides; see pkg/config.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jquante/geleit/pkg/auth"
	"github.com/jquante/geleit/pkg/auth/allowall"
	"github.com/jquante/geleit/pkg/config"
	"github.com/jquante/geleit/pkg/debug"
	"github.com/jquante/geleit/pkg/observability"
	"github.com/jquante/geleit/pkg/pipeline"
	pipelinehttp "github.com/jquante/geleit/pkg/pipeline/http"
	"github.com/jquante/geleit/pkg/span"
)

func main() {
	if err := run(); err != nil {
		slog.Error("gateway failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	debug.Init(cfg.Logging.Debug)
	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	// Terminal factory: proxy to the upstream when configured, otherwise
	// the built-in status responder.
	var inner pipeline.Factory
	if cfg.Upstream.URL != "" {
		inner = pipelinehttp.ProxyFactory(newUpstreamClient(cfg.Upstream))
		logger.Info("forwarding enabled", "upstream", cfg.Upstream.URL)
	} else {
		inner = pipeline.Shared(statusService())
		logger.Info("serving built-in status responder")
	}

	// Identity wraps the terminal; recovery, context injection, and
	// logging wrap outward from there.
	factory := pipeline.WrapFactory(
		allowall.Factory(inner, cfg.Identity.Subject),
		pipeline.Recovery(),
		pipeline.AddContext(pipeline.WithHeader(cfg.Span.Header)),
		pipeline.Logging(logger),
	)

	svc, err := factory.NewService(context.Background(), cfg.Upstream.URL)
	if err != nil {
		return fmt.Errorf("building service chain: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", pipelinehttp.Handler(svc, pipelinehttp.WithSpanHeader(cfg.Span.Header)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.Handler())
	}

	srv := pipelinehttp.NewServer(observability.MetricsMiddleware(mux),
		pipelinehttp.WithAddr(cfg.Server.Addr),
		pipelinehttp.WithLogger(logger),
		pipelinehttp.WithReadTimeout(cfg.Server.ReadTimeout),
		pipelinehttp.WithWriteTimeout(cfg.Server.WriteTimeout),
		pipelinehttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	)

	return srv.ListenAndServe()
}

// statusService returns the terminal service used when no upstream is
// configured. It reports the span id and granted subject so the full
// chain is observable from a plain HTTP client.
func statusService() pipeline.Service {
	return pipeline.ServiceFunc(func(ctx context.Context, req *http.Request) (*http.Response, error) {
		id, _ := span.IDFromContext(ctx)

		payload := map[string]string{
			"status":  "ok",
			"span_id": string(id),
		}
		if grant, ok := auth.AuthorizationFromContext(ctx); ok && grant != nil {
			payload["subject"] = grant.Subject
			payload["scopes"] = grant.Scopes.String()
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}

		header := http.Header{}
		header.Set("Content-Type", "application/json")
		header.Set(span.Header, string(id))

		return &http.Response{
			StatusCode:    http.StatusOK,
			Header:        header,
			Body:          io.NopCloser(bytes.NewReader(body)),
			ContentLength: int64(len(body)),
			Request:       req,
		}, nil
	})
}

// newUpstreamClient builds the retrying HTTP client used to reach the
// upstream.
func newUpstreamClient(cfg config.UpstreamConfig) *http.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = cfg.RetryMax
	c.RetryWaitMin = cfg.RetryWaitMin
	c.RetryWaitMax = cfg.RetryWaitMax
	c.Logger = nil
	c.HTTPClient.Timeout = cfg.Timeout
	return c.StandardClient()
}

// newLogger builds the process logger from the logging config.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: debug.ParseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
