package auth

import (
	"errors"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// signedToken builds an HS256-signed token string for claim-peeking
// tests. The signature is irrelevant; TokenClaims never verifies it.
func signedToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

func TestTokenClaims(t *testing.T) {
	tok := signedToken(t, jwtlib.MapClaims{
		"sub": "alice",
		"iss": "https://issuer.example",
	})

	subject, issuer, err := Bearer(tok).TokenClaims()
	if err != nil {
		t.Fatalf("TokenClaims error: %v", err)
	}
	if subject != "alice" {
		t.Errorf("subject = %q, want %q", subject, "alice")
	}
	if issuer != "https://issuer.example" {
		t.Errorf("issuer = %q, want %q", issuer, "https://issuer.example")
	}
}

func TestTokenClaimsMissingClaims(t *testing.T) {
	tok := signedToken(t, jwtlib.MapClaims{"aud": "geleit"})

	subject, issuer, err := Bearer(tok).TokenClaims()
	if err != nil {
		t.Fatalf("TokenClaims error: %v", err)
	}
	if subject != "" || issuer != "" {
		t.Errorf("claims = %q/%q, want empty for token without sub/iss", subject, issuer)
	}
}

func TestTokenClaimsNotBearer(t *testing.T) {
	_, _, err := Basic("alice", "pw").TokenClaims()
	if !errors.Is(err, ErrNotBearer) {
		t.Errorf("error = %v, want ErrNotBearer", err)
	}

	_, _, err = APIKey("sk-1").TokenClaims()
	if !errors.Is(err, ErrNotBearer) {
		t.Errorf("error = %v, want ErrNotBearer", err)
	}
}

func TestTokenClaimsMalformed(t *testing.T) {
	if _, _, err := Bearer("not-a-jwt").TokenClaims(); err == nil {
		t.Error("expected error for malformed token")
	}
	if _, _, err := Bearer("").TokenClaims(); err == nil {
		t.Error("expected error for empty token")
	}
}
