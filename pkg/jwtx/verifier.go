package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrWeakSecret  = errors.New("jwtx: signing secret too short")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier validates tokens produced by HS256Signer with the same secret.
type HS256Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewVerifierHS256 creates a verifier. An empty issuer skips the iss check.
func NewVerifierHS256(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer}
}

// WithLeeway allows small clock skew when validating exp/nbf.
func (v *HS256Verifier) WithLeeway(d time.Duration) *HS256Verifier {
	v.leeway = d
	return v
}

// Verify checks signature, algorithm, expiry, issuer and subject, then
// returns the parsed Claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		// jwt/v5 also reports an alg outside WithValidMethods this way.
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrAlgMismatch, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	default:
		return fmt.Errorf("%w: %w", ErrInvalidClaim, err)
	}
}
