package auth

import "context"

// Identity is the authenticated caller attached to a request context by the
// bearer middleware. No roles are granted; the username is all downstream
// handlers consult.
type Identity struct {
	Username string
}

type identityCtxKey struct{}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// IdentityFrom extracts the caller identity, reporting whether one was set.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(Identity)
	return id, ok
}
