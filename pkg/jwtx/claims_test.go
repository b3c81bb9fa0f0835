package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewSessionClaims(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	c := jwtx.NewSessionClaims("user-1", "todo-api", time.Hour, now)

	require.Equal(t, "user-1", c.UserID)
	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, "todo-api", c.Issuer)
	require.True(t, now.Equal(c.IssuedAt.Time))
	require.True(t, now.Add(time.Hour).Equal(c.ExpiresAt.Time))
	require.NotEmpty(t, c.ID)

	other := jwtx.NewSessionClaims("user-1", "todo-api", time.Hour, now)
	require.NotEqual(t, c.ID, other.ID, "jti must be unique per token")
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "todo-api",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("todo-api"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
	})
}

func TestValidateSubject(t *testing.T) {
	t.Run("userId only", func(t *testing.T) {
		c := &jwtx.Claims{UserID: "u1"}
		require.NoError(t, c.ValidateSubject())
		require.Equal(t, "u1", c.Owner())
	})

	t.Run("sub only", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u2"}}
		require.NoError(t, c.ValidateSubject())
		require.Equal(t, "u2", c.Owner())
	})

	t.Run("missing", func(t *testing.T) {
		c := &jwtx.Claims{}
		require.ErrorIs(t, c.ValidateSubject(), jwtx.ErrInvalidClaim)
	})

	t.Run("disagreeing", func(t *testing.T) {
		c := &jwtx.Claims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{Subject: "u2"}}
		require.ErrorIs(t, c.ValidateSubject(), jwtx.ErrInvalidClaim)
	})
}
