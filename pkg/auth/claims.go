package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotBearer is returned by TokenClaims for credentials that do not
// carry a bearer token.
var ErrNotBearer = errors.New("credential is not a bearer token")

// TokenClaims peeks at the subject and issuer claims of a Bearer
// credential's JWT payload WITHOUT verifying the signature. The values
// are untrusted input, suitable only for log and trace enrichment;
// access decisions must never be based on them.
func (c Credential) TokenClaims() (subject, issuer string, err error) {
	if c.Kind != KindBearer {
		return "", "", ErrNotBearer
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, claims); err != nil {
		return "", "", fmt.Errorf("parsing bearer token: %w", err)
	}

	// Missing claims are not an error; the peek yields what is there.
	subject, _ = claims.GetSubject()
	issuer, _ = claims.GetIssuer()
	return subject, issuer, nil
}
