package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Cheap params keep the suite fast; production defaults are covered separately.
var testParams = Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1}

func TestHash_PHCFormat(t *testing.T) {
	h := NewPasswordHasher(testParams, "pepper")

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.Equal(t, "m=1024,t=1,p=1", parts[3])
			require.NotEmpty(t, parts[4])
			require.NotEmpty(t, parts[5])

			require.NoError(t, h.Verify(tt.password, hash))
		})
	}
}

func TestHash_UniqueSalts(t *testing.T) {
	h := NewPasswordHasher(testParams, "")

	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2)
	require.NoError(t, h.Verify("samepassword", hash1))
	require.NoError(t, h.Verify("samepassword", hash2))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewPasswordHasher(testParams, "")
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong-password", "Correct-Password", "correct-password ", "", strings.Repeat("x", 10000)} {
		require.ErrorIs(t, h.Verify(wrong, hash), ErrPasswordMismatch)
	}
}

func TestVerify_InvalidHashFormat(t *testing.T) {
	h := NewPasswordHasher(testParams, "")

	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, h.Verify("test-password", tt.invalidHash), ErrInvalidHash)
		})
	}
}

func TestVerify_PepperMustMatch(t *testing.T) {
	hash, err := NewPasswordHasher(testParams, "pepper-a").Hash("secret1")
	require.NoError(t, err)

	require.NoError(t, NewPasswordHasher(testParams, "pepper-a").Verify("secret1", hash))
	require.ErrorIs(t, NewPasswordHasher(testParams, "pepper-b").Verify("secret1", hash), ErrPasswordMismatch)
}

func TestVerify_ParamsReadFromHash(t *testing.T) {
	old := NewPasswordHasher(testParams, "")
	hash, err := old.Hash("secret1")
	require.NoError(t, err)

	// Raising the cost must not break existing hashes.
	stronger := NewPasswordHasher(Argon2Params{Memory: 2048, Iterations: 2, Parallelism: 1}, "")
	require.NoError(t, stronger.Verify("secret1", hash))
}

func TestNewPasswordHasher_Defaults(t *testing.T) {
	h := NewPasswordHasher(Argon2Params{}, "")
	require.Equal(t, DefaultArgon2Params, h.Params)
}

func TestLoadOrCreatePepper(t *testing.T) {
	t.Run("empty path disables pepper", func(t *testing.T) {
		pepper, err := LoadOrCreatePepper("")
		require.NoError(t, err)
		require.Empty(t, pepper)
	})

	t.Run("creates then reloads the same pepper", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secrets", "pepper")

		first, err := LoadOrCreatePepper(path)
		require.NoError(t, err)
		require.Len(t, first, 43)

		second, err := LoadOrCreatePepper(path)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pepper")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

		_, err := LoadOrCreatePepper(path)
		require.Error(t, err)
	})
}
