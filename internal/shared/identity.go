package shared

import "context"

// Principal is the authenticated identity resolved for a request. It is a
// projection of a stored user record and is immutable once bound.
type Principal struct {
	ID    int64
	Email string
	Roles []string
}

// Identity is either anonymous or carries a Principal. Request handling code
// receives it explicitly through the context instead of consulting ambient
// global state.
type Identity struct {
	principal *Principal
}

// Anonymous returns the identity of an unauthenticated request.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated wraps a resolved principal.
func Authenticated(p Principal) Identity {
	return Identity{principal: &p}
}

// Principal returns the bound principal, if any.
func (id Identity) Principal() (Principal, bool) {
	if id.principal == nil {
		return Principal{}, false
	}
	return *id.principal, true
}

// IsAuthenticated reports whether a principal is bound.
func (id Identity) IsAuthenticated() bool {
	return id.principal != nil
}

type identityContextKey struct{}

// ContextWithIdentity binds the identity to the request context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext extracts the bound identity. Requests that never passed
// the resolver report as anonymous.
func IdentityFromContext(ctx context.Context) Identity {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	if !ok {
		return Anonymous()
	}
	return id
}
