package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadGateway, &Error{Type: ErrorTypeUpstream, Message: "no route"})

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Type != ErrorTypeUpstream {
		t.Errorf("type = %q, want %q", body.Error.Type, ErrorTypeUpstream)
	}
	if body.Error.Message != "no route" {
		t.Errorf("message = %q, want %q", body.Error.Message, "no route")
	}
}

func TestErrorString(t *testing.T) {
	e := &Error{Type: ErrorTypeServer, Message: "boom"}
	if got := e.Error(); got != "server_error: boom" {
		t.Errorf("Error() = %q, want %q", got, "server_error: boom")
	}
}
