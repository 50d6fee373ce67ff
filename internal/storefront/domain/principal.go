package domain

import "context"

// Principal is the authenticated caller attached to a request. For local
// tokens only IdentityID, Email and Role are known; names and ExternalID are
// filled in for federated callers, whose identity is loaded from the store.
type Principal struct {
	IdentityID int64
	Email      string
	Role       Role
	FirstName  string
	LastName   string
	ExternalID string
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// PrincipalRole adapts PrincipalFromContext for role gates.
func PrincipalRole(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return "", false
	}
	return string(p.Role), true
}
