// Package auth defines the authorization record threaded through the
// geleit pipeline and the raw credential shapes read at the HTTP
// boundary.
//
// An Authorization is a granted-access decision (subject, scopes,
// issuer), pushed onto the request context by an identity layer and read
// by downstream handlers. The package prescribes the frame contract;
// producing a record is left to identity middleware such as
// auth/allowall, and a genuine authenticator slots in by satisfying the
// same contract: push a *Authorization onto the context and forward.
//
// Credentials (Basic, Bearer, API key) are boundary-only helpers: they
// extract what a client presented without validating it. No component in
// this module makes access decisions.
package auth
