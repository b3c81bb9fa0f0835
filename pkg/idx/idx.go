// Package idx generates and parses the ULID identifiers used for users,
// todos and request ids.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	globalOnce sync.Once
	global     *generator
)

// generator hands out ULIDs from a monotonic source so ids minted within the
// same millisecond still sort in creation order.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := ulid.MustNew(ulid.Timestamp(t), g.entropy)
	return ID(u.String())
}

func initGlobal() {
	global = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a new lexicographically sortable ID for the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt generates an ID stamped with t. Handy for tests that need a known
// ordering.
func NewAt(t time.Time) ID {
	globalOnce.Do(initGlobal)
	return global.newAt(t)
}

// Parse validates s as a ULID and returns it as an ID. Surrounding whitespace
// is ignored.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}

	if _, err := ulid.ParseStrict(s); err != nil {
		return "", ErrInvalid
	}

	return ID(s), nil
}

func (id ID) String() string { return string(id) }
