package integration

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/jquante/geleit/pkg/span"
)

func TestTerminalServiceSeesGrantedIdentity(t *testing.T) {
	resp := getURL(t, testEnv.Local.URL+"/whoami")

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var report frameReport
	decodeJSON(t, resp, &report)

	if report.Subject != testSubject {
		t.Errorf("subject = %q, want %q", report.Subject, testSubject)
	}
	if report.Scopes != "*" {
		t.Errorf("scopes = %q, want %q (all scopes)", report.Scopes, "*")
	}
	if report.Issuer != "" {
		t.Errorf("issuer = %q, want empty", report.Issuer)
	}
}

func TestClientSpanIDReachesTerminalService(t *testing.T) {
	resp := getWithHeaders(t, testEnv.Local.URL+"/", map[string]string{
		span.Header: "abc-123",
	})

	if got := resp.Header.Get(span.Header); got != "abc-123" {
		t.Errorf("response span header = %q, want %q", got, "abc-123")
	}

	var report frameReport
	decodeJSON(t, resp, &report)

	if report.SpanID != "abc-123" {
		t.Errorf("span id seen by terminal = %q, want %q", report.SpanID, "abc-123")
	}
}

func TestGeneratedSpanIDIsUUID(t *testing.T) {
	resp := getURL(t, testEnv.Local.URL+"/")

	var report frameReport
	decodeJSON(t, resp, &report)

	if report.SpanID == "" {
		t.Fatal("terminal saw no span id, want generated id")
	}
	if _, err := uuid.Parse(report.SpanID); err != nil {
		t.Errorf("generated span id %q is not a UUID: %v", report.SpanID, err)
	}
}

func TestGeneratedSpanIDReturnedToClient(t *testing.T) {
	resp := getURL(t, testEnv.Local.URL+"/")

	gotHeader := resp.Header.Get(span.Header)
	if gotHeader == "" {
		t.Fatal("response carries no span header")
	}

	var report frameReport
	decodeJSON(t, resp, &report)

	if report.SpanID != gotHeader {
		t.Errorf("response header id %q differs from terminal id %q", gotHeader, report.SpanID)
	}
}

func TestEachRequestGetsFreshSpanID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		resp := getURL(t, testEnv.Local.URL+"/")

		var report frameReport
		decodeJSON(t, resp, &report)

		if seen[report.SpanID] {
			t.Fatalf("span id %q repeated across requests", report.SpanID)
		}
		seen[report.SpanID] = true
	}
}
