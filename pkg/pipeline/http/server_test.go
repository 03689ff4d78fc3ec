package http

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestServerFunctionalOptions(t *testing.T) {
	srv := NewServer(http.NewServeMux(),
		WithAddr(":9999"),
		WithReadTimeout(10*time.Second),
		WithWriteTimeout(20*time.Second),
		WithShutdownTimeout(5*time.Second),
		WithLogger(slog.Default()),
	)

	if srv.config.Addr != ":9999" {
		t.Errorf("addr = %q, want %q", srv.config.Addr, ":9999")
	}
	if srv.config.ReadTimeout != 10*time.Second {
		t.Errorf("read timeout = %v, want 10s", srv.config.ReadTimeout)
	}
	if srv.config.WriteTimeout != 20*time.Second {
		t.Errorf("write timeout = %v, want 20s", srv.config.WriteTimeout)
	}
	if srv.config.ShutdownTimeout != 5*time.Second {
		t.Errorf("shutdown timeout = %v, want 5s", srv.config.ShutdownTimeout)
	}
}

func TestServerDefaults(t *testing.T) {
	srv := NewServer(http.NewServeMux())

	if srv.config.Addr != ":8080" {
		t.Errorf("default addr = %q, want %q", srv.config.Addr, ":8080")
	}
	if srv.config.ReadTimeout != 30*time.Second {
		t.Errorf("default read timeout = %v, want 30s", srv.config.ReadTimeout)
	}
	if srv.config.WriteTimeout != 120*time.Second {
		t.Errorf("default write timeout = %v, want 120s", srv.config.WriteTimeout)
	}
}

func TestServerStartsAndAcceptsRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	srv := NewServer(mux, WithAddr("127.0.0.1:0"))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen error: %v", err)
	}
	addr := ln.Addr().String()

	go srv.ServeOn(ln)
	time.Sleep(50 * time.Millisecond)

	resp, err := http.Get("http://" + addr + "/ping")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "pong" {
		t.Errorf("body = %q, want pong", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}

func TestServerGracefulShutdownWaitsForInflight(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("done"))
	})

	srv := NewServer(mux,
		WithAddr("127.0.0.1:0"),
		WithShutdownTimeout(5*time.Second),
	)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen error: %v", err)
	}
	addr := ln.Addr().String()

	go srv.ServeOn(ln)
	time.Sleep(50 * time.Millisecond)

	statusCh := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + addr + "/slow")
		if err != nil {
			statusCh <- 0
			return
		}
		defer resp.Body.Close()
		statusCh <- resp.StatusCode
	}()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)

	if status := <-statusCh; status != http.StatusOK {
		t.Errorf("in-flight request status = %d, want 200", status)
	}
}
