package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	exampleIssuer = "todo-api"
	exampleSecret = "0123456789abcdef0123456789abcdef-test"
)

func newSigner(t *testing.T) *jwtx.HS256Signer {
	t.Helper()
	s, err := jwtx.NewSignerHS256("k1", []byte(exampleSecret))
	require.NoError(t, err)
	return s
}

func TestHS256SignAndVerify(t *testing.T) {
	signer := newSigner(t)
	require.Equal(t, "HS256", signer.Alg())
	require.Equal(t, "k1", signer.KID())

	claims := jwtx.NewSessionClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", exampleIssuer, 5*time.Minute, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	verifier := jwtx.NewVerifierHS256([]byte(exampleSecret), exampleIssuer)
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.UserID, got.UserID)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, claims.ID, got.ID)
}

func TestHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256("", []byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256VerifyFailures(t *testing.T) {
	signer := newSigner(t)
	verifier := jwtx.NewVerifierHS256([]byte(exampleSecret), exampleIssuer)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256("", []byte(strings.Repeat("z", 40)))
		require.NoError(t, err)

		token, err := other.Sign(jwtx.NewSessionClaims("u1", exampleIssuer, time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		token, err := signer.Sign(jwtx.NewSessionClaims("u1", exampleIssuer, time.Hour, past))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("expired within leeway", func(t *testing.T) {
		past := time.Now().Add(-time.Hour - 5*time.Second)
		token, err := signer.Sign(jwtx.NewSessionClaims("u1", exampleIssuer, time.Hour, past))
		require.NoError(t, err)

		lenient := jwtx.NewVerifierHS256([]byte(exampleSecret), exampleIssuer).WithLeeway(time.Minute)
		_, err = lenient.Verify(token)
		require.NoError(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("u1", "elsewhere", time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("missing expiry", func(t *testing.T) {
		c := jwtx.Claims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{Subject: "u1", Issuer: exampleIssuer}}
		token, err := signer.Sign(c)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := jwtx.NewSessionClaims("", exampleIssuer, time.Minute, time.Now())
		token, err := signer.Sign(c)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("alg none", func(t *testing.T) {
		c := jwtx.NewSessionClaims("u1", exampleIssuer, time.Minute, time.Now())
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)

		_, err = verifier.Verify("")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}
