package jwtx

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret we accept. RFC 7518 asks for a
// key at least as long as the hash output.
const MinSecretLength = 32

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	Validate() error
}

// HS256Signer signs tokens with a shared server secret.
type HS256Signer struct {
	kid    string
	secret []byte
}

// NewSignerHS256 creates an HS256 signer. kid is optional and only copied
// into the token header.
func NewSignerHS256(kid string, secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{kid: kid, secret: secret}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }
func (s *HS256Signer) KID() string { return s.kid }

// Sign turns the claims into a compact signed JWT.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	if s.kid != "" {
		t.Header["kid"] = s.kid
	}
	return t.SignedString(s.secret)
}

// Validate does a quick sanity check on the secret.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinSecretLength {
		return fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, MinSecretLength, len(s.secret))
	}
	return nil
}
