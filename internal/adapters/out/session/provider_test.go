package session

import (
	"context"
	"testing"
	"time"

	"dashboard/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "usr_1",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newTestProvider(token string) *Provider {
	p := NewProvider(token)
	p.now = func() time.Time { return now }
	return p
}

func TestProvider_Token(t *testing.T) {
	valid := signed(t, now.Add(time.Hour))
	stale := signed(t, now.Add(-time.Minute))

	tests := []struct {
		name     string
		fallback string
		ctxToken string
		want     string
		wantErr  error
	}{
		{name: "no session", wantErr: errs.ErrNotAuthenticated},
		{name: "fallback token", fallback: valid, want: valid},
		{name: "caller token wins", fallback: "opaque", ctxToken: valid, want: valid},
		{name: "expired token", fallback: stale, wantErr: errs.ErrNotAuthenticated},
		{name: "opaque token is passed through", fallback: "opaque-token", want: "opaque-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(tt.fallback)
			ctx := context.Background()
			if tt.ctxToken != "" {
				ctx = WithToken(ctx, tt.ctxToken)
			}

			got, err := p.Token(ctx)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "please attempt to sign in first", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvider_SetToken(t *testing.T) {
	p := newTestProvider("")
	_, err := p.Token(context.Background())
	require.ErrorIs(t, err, errs.ErrNotAuthenticated)

	p.SetToken("opaque")

	got, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque", got)
}

func TestFromBearer(t *testing.T) {
	assert.Equal(t, "abc", FromBearer("Bearer abc"))
	assert.Equal(t, "abc", FromBearer("bearer  abc "))
	assert.Equal(t, "abc", FromBearer("abc"))
	assert.Empty(t, FromBearer(""))
}
