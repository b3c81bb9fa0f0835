package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const pepperLength = 32

// LoadOrCreatePepper reads the pepper stored at path, creating the file with
// a fresh random pepper when it does not exist yet. An empty path disables
// peppering and returns "".
//
// Losing the pepper file makes every stored password unverifiable, so back it
// up alongside the database.
func LoadOrCreatePepper(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	path = filepath.Clean(path)

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		pepper := strings.TrimSpace(string(b))
		if pepper == "" {
			return "", fmt.Errorf("cryptox: pepper file %q is empty", path)
		}
		return pepper, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("cryptox: read pepper: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("cryptox: create pepper dir: %w", err)
	}

	raw := make([]byte, pepperLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	pepper := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(pepper), 0o600); err != nil {
		return "", fmt.Errorf("cryptox: write pepper: %w", err)
	}
	return pepper, nil
}
