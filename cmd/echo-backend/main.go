// Command echo-backend runs a deterministic upstream for exercising the
// gateway's forwarding path. It echoes the request method, path, and
// selected headers back as JSON so a caller can verify what the gateway
// actually forwarded.
//
// Configuration:
//
//	ECHO_PORT - Listen port (default: 9090)
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jquante/geleit/pkg/span"
)

func main() {
	port := os.Getenv("ECHO_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleEcho)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("echo backend starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("echo backend failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("echo backend shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

type echoResponse struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	SpanID   string `json:"span_id,omitempty"`
	BodySize int64  `json:"body_size"`
}

// handleEcho reports what arrived, reflecting the span header back so
// callers can check end-to-end propagation.
func handleEcho(w http.ResponseWriter, r *http.Request) {
	n, _ := io.Copy(io.Discard, r.Body)

	resp := echoResponse{
		Method:   r.Method,
		Path:     r.URL.Path,
		SpanID:   r.Header.Get(span.Header),
		BodySize: n,
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.SpanID != "" {
		w.Header().Set(span.Header, resp.SpanID)
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
