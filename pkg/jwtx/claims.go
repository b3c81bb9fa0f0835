package jwtx

import (
	"time"

	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a login token stays valid unless configured
// otherwise.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Claims are the session-token claims. UserID duplicates the subject so
// clients that only read the payload still find the owner.
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
}

// NewSessionClaims builds claims for userID valid from now for ttl.
func NewSessionClaims(userID, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		UserID: userID,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	return cryptox.MustGenerateToken(cryptox.TokenSize128)
}

// Owner returns the user the token was issued to.
func (c *Claims) Owner() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateSubject makes sure the token names a user and that the two places
// it can do so agree.
func (c *Claims) ValidateSubject() error {
	if c.Owner() == "" {
		return ErrInvalidClaim
	}
	if c.UserID != "" && c.Subject != "" && c.UserID != c.Subject {
		return ErrInvalidClaim
	}
	return nil
}
