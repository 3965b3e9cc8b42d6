package ports

import "context"

// SessionProvider hands out the identity token of the signed-in operator.
// It returns errs.ErrNotAuthenticated when there is no usable session.
type SessionProvider interface {
	Token(ctx context.Context) (string, error)
}
