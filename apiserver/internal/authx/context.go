package authx

import (
	"context"

	"github.com/innoverse/admin/sdk/authx"
)

type sessionContextKey struct{}

// ContextWithSession returns a context.Context that has been augmented with
// the provided Session.
func ContextWithSession(
	ctx context.Context,
	session authx.Session,
) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext extracts the Session from the provided context.Context
// and returns it.
func SessionFromContext(ctx context.Context) (authx.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(authx.Session)
	return session, ok
}
