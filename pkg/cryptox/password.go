package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrPasswordMismatch is returned when a password does not match its hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrInvalidHash is returned when an encoded hash cannot be parsed.
	ErrInvalidHash = errors.New("invalid hash format")
)

// Argon2Params is the Argon2id cost factor. Raising Memory or Iterations
// makes every hash slower to compute, for us and for an attacker.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	KeyLength   uint32
	SaltLength  uint32
}

// DefaultArgon2Params follows the OWASP minimum for Argon2id (19 MiB, t=2, p=1).
var DefaultArgon2Params = Argon2Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	KeyLength:   32,
	SaltLength:  16,
}

// PasswordHasher hashes and verifies passwords with Argon2id. The pepper is
// appended to every password before hashing and is never stored with the hash.
type PasswordHasher struct {
	Params Argon2Params
	Pepper string
}

// NewPasswordHasher returns a hasher for the given params, filling any zero
// fields from DefaultArgon2Params.
func NewPasswordHasher(params Argon2Params, pepper string) *PasswordHasher {
	if params.Memory == 0 {
		params.Memory = DefaultArgon2Params.Memory
	}
	if params.Iterations == 0 {
		params.Iterations = DefaultArgon2Params.Iterations
	}
	if params.Parallelism == 0 {
		params.Parallelism = DefaultArgon2Params.Parallelism
	}
	if params.KeyLength == 0 {
		params.KeyLength = DefaultArgon2Params.KeyLength
	}
	if params.SaltLength == 0 {
		params.SaltLength = DefaultArgon2Params.SaltLength
	}
	return &PasswordHasher{Params: params, Pepper: pepper}
}

// Hash generates a PHC-format Argon2id hash string including salt and parameters.
func (h *PasswordHasher) Hash(password string) (string, error) {
	p := h.Params

	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password+h.Pepper), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.Memory,
		p.Iterations,
		p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify compares a plaintext password against a PHC-style Argon2id hash. The
// cost parameters are read from the hash itself, so hashes made under older
// settings keep verifying after the params change.
func (h *PasswordHasher) Verify(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return fmt.Errorf("%w: expected 6 parts", ErrInvalidHash)
	}
	if parts[1] != "argon2id" {
		return fmt.Errorf("%w: not argon2id", ErrInvalidHash)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return fmt.Errorf("%w: wrong version", ErrInvalidHash)
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: parameters: %w", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %w", ErrInvalidHash, err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("%w: hash: %w", ErrInvalidHash, err)
	}

	computed := argon2.IDKey(
		[]byte(password+h.Pepper),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - decoded from our own encoding
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}
