// Package principal provides the requesting principal and its resolution
// from incoming requests.
package principal

// Principal is the entity a request acts on behalf of. A zero UserID
// marks an anonymous request.
type Principal struct {
	UserID string
}

// Anonymous returns the anonymous principal.
func Anonymous() Principal {
	return Principal{}
}

// IsAnonymous reports whether the principal is unauthenticated.
func (p Principal) IsAnonymous() bool {
	return p.UserID == ""
}
