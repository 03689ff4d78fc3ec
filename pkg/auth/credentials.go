package auth

import (
	"net/http"
	"strings"
)

// CredentialKind tags the transport form of a raw credential.
type CredentialKind int

const (
	// KindBasic is HTTP Basic authentication (username and password).
	KindBasic CredentialKind = iota

	// KindBearer is an HTTP Bearer token.
	KindBearer

	// KindAPIKey is a raw API key read from an arbitrary header.
	KindAPIKey
)

// Credential is a raw authentication value read off a request boundary.
// It carries whatever the client presented, unvalidated; deciding whether
// a credential grants access is a separate concern and not part of this
// package.
type Credential struct {
	Kind CredentialKind

	// Username and Password are set for KindBasic.
	Username string
	Password string

	// Token is set for KindBearer.
	Token string

	// Key is set for KindAPIKey.
	Key string
}

// Basic returns an HTTP Basic credential.
func Basic(username, password string) Credential {
	return Credential{Kind: KindBasic, Username: username, Password: password}
}

// Bearer returns an HTTP Bearer token credential.
func Bearer(token string) Credential {
	return Credential{Kind: KindBearer, Token: token}
}

// APIKey returns a raw API key credential.
func APIKey(key string) Credential {
	return Credential{Kind: KindAPIKey, Key: key}
}

// CredentialFromRequest reads a typed credential from the standard
// Authorization header: Basic credentials via the host framework's
// parser, Bearer tokens by case-insensitive scheme match. The second
// return is false when the header is absent or carries an unrecognized
// scheme.
func CredentialFromRequest(r *http.Request) (Credential, bool) {
	if username, password, ok := r.BasicAuth(); ok {
		return Basic(username, password), true
	}

	header := r.Header.Get("Authorization")
	const scheme = "bearer "
	if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
		if token := strings.TrimSpace(header[len(scheme):]); token != "" {
			return Bearer(token), true
		}
	}

	return Credential{}, false
}

// APIKeyFromHeader reads the named header of h as a raw API key. The
// second return is false when the header is absent or empty.
func APIKeyFromHeader(h http.Header, name string) (Credential, bool) {
	v := h.Get(name)
	if v == "" {
		return Credential{}, false
	}
	return APIKey(v), true
}
