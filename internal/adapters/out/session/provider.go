// Package session hands the operator's identity token to the GraphQL client.
// The token is minted by the identity provider and verified by the remote
// API; here it is only inspected for presence and expiry so that a call that
// is bound to fail never leaves the process.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var _ ports.SessionProvider = (*Provider)(nil)

type tokenKey struct{}

// WithToken attaches the caller's token to ctx. It takes precedence over the
// token configured on the Provider.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// FromBearer strips an optional "Bearer " prefix from an Authorization value.
func FromBearer(header string) string {
	token := strings.TrimSpace(header)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}

// Provider implements ports.SessionProvider.
type Provider struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

// NewProvider creates a provider with a fallback token used by background
// work (sync job, notification subscriber). It may be empty.
func NewProvider(token string) *Provider {
	return &Provider{token: token, now: time.Now}
}

// SetToken replaces the fallback token.
func (p *Provider) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
}

// Token returns errs.ErrNotAuthenticated when no token is present or the
// token has expired.
func (p *Provider) Token(ctx context.Context) (string, error) {
	token, _ := ctx.Value(tokenKey{}).(string)
	if token == "" {
		p.mu.RLock()
		token = p.token
		p.mu.RUnlock()
	}
	if token == "" {
		return "", errs.ErrNotAuthenticated
	}
	if expired(token, p.now()) {
		return "", errs.ErrNotAuthenticated
	}
	return token, nil
}

// expired reports whether token is a JWT whose exp claim has passed. Opaque
// tokens are left for the remote to judge.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
