package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/college-appointments/internal/domain"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub, role string) Claims {
	return Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    "college-auth",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestResolve(t *testing.T) {
	v := NewVerifier(secret, WithIssuer("college-auth"))

	actor, err := v.Resolve(context.Background(), sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims("42", "professor")))

	require.NoError(t, err)
	assert.Equal(t, domain.Actor{UserID: 42, Role: domain.RoleProfessor}, actor)
}

func TestResolve_Rejects(t *testing.T) {
	v := NewVerifier(secret, WithIssuer("college-auth"))

	expired := validClaims("42", "student")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noExpiry := validClaims("42", "student")
	noExpiry.ExpiresAt = nil

	wrongIssuer := validClaims("42", "student")
	wrongIssuer.Issuer = "someone-else"

	tests := []struct {
		name  string
		token string
		err   error
	}{
		{"garbage", "not-a-token", ErrInvalidToken},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims("42", "student")), ErrInvalidToken},
		{"wrong algorithm", sign(t, jwt.SigningMethodHS512, []byte(secret), validClaims("42", "student")), ErrInvalidToken},
		{"expired", sign(t, jwt.SigningMethodHS256, []byte(secret), expired), ErrInvalidToken},
		{"no expiry", sign(t, jwt.SigningMethodHS256, []byte(secret), noExpiry), ErrInvalidToken},
		{"wrong issuer", sign(t, jwt.SigningMethodHS256, []byte(secret), wrongIssuer), ErrInvalidToken},
		{"non numeric subject", sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims("abc", "student")), ErrInvalidClaims},
		{"unknown role", sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims("42", "admin")), ErrInvalidClaims},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Resolve(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
