package auth

import (
	"slices"
	"strings"
)

// Scopes describes the breadth of a granted authorization: either an
// explicit set of named scopes, or every scope (checking disabled).
type Scopes struct {
	// All marks every possible scope as granted. When set, Names is empty.
	All bool

	// Names is the explicit scope set, sorted and free of duplicates.
	Names []string
}

// AllScopes returns the sentinel granting every scope.
func AllScopes() Scopes {
	return Scopes{All: true}
}

// ScopeSet returns an explicit scope set. Names are sorted and
// deduplicated, so sets compare independently of argument order.
func ScopeSet(names ...string) Scopes {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return Scopes{Names: slices.Compact(sorted)}
}

// Contains reports whether the named scope is granted.
func (s Scopes) Contains(name string) bool {
	if s.All {
		return true
	}
	_, found := slices.BinarySearch(s.Names, name)
	return found
}

// Equal reports whether two scope grants are the same: both All, or
// explicit sets with identical members.
func (s Scopes) Equal(other Scopes) bool {
	if s.All || other.All {
		return s.All == other.All
	}
	return slices.Equal(s.Names, other.Names)
}

// String renders the grant for logs: "*" for All, otherwise the
// space-separated scope names.
func (s Scopes) String() string {
	if s.All {
		return "*"
	}
	return strings.Join(s.Names, " ")
}

// Authorization records a granted-access decision for one request. It is
// constructed by an identity layer, pushed onto the request context, and
// read by downstream handlers; it is not a credential and holds no
// secret material.
type Authorization struct {
	// Subject identifies what may be accessed.
	Subject string

	// Scopes lists what types of access are permitted.
	Scopes Scopes

	// Issuer identifies the party to whom authorization was granted,
	// when known: in an OAuth setting, the client which requested access
	// from the resource owner. Empty when no issuer was recorded.
	Issuer string
}

// Equal reports whether two authorization records grant the same access.
// Two nil records are equal; nil never equals a populated record.
func (a *Authorization) Equal(other *Authorization) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Subject == other.Subject &&
		a.Scopes.Equal(other.Scopes) &&
		a.Issuer == other.Issuer
}
