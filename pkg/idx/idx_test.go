package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(" " + id.String() + " ")
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	cases := []string{"", "   ", "not-a-ulid", "507f1f77bcf86cd799439011", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z"}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			_, err := idx.Parse(c)
			require.ErrorIs(t, err, idx.ErrInvalid)
		})
	}
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Less(t, a.String(), b.String())
}

func TestSameMillisecondStaysOrdered(t *testing.T) {
	now := time.Now().UTC()
	prev := idx.NewAt(now)
	for range 50 {
		next := idx.NewAt(now)
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestNewAtStampsTime(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	u, err := ulid.ParseStrict(idx.NewAt(tm).String())
	require.NoError(t, err)
	require.Equal(t, ulid.Timestamp(tm), u.Time())
}
