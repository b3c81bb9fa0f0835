package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/internal/todo/validation"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "service-test-secret-0123456789abcdef"
	testIssuer = "todo-test"
)

// Cheap argon2 settings keep the suite fast.
var testParams = cryptox.Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1}

type fixture struct {
	store    *sqlite.Store
	auth     *AuthService
	todos    *TodoService
	verifier *jwtx.HS256Verifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256("", []byte(testSecret))
	require.NoError(t, err)

	v := validation.New()
	return &fixture{
		store: st,
		auth: &AuthService{
			Store:     st,
			Hasher:    cryptox.NewPasswordHasher(testParams, ""),
			Signer:    signer,
			Validator: v,
			Issuer:    testIssuer,
			TokenTTL:  time.Hour,
		},
		todos: &TodoService{
			Store:       st,
			Validator:   v,
			MaxPageSize: 100,
		},
		verifier: jwtx.NewVerifierHS256([]byte(testSecret), testIssuer),
	}
}

func ptr[T any](v T) *T { return &v }

func requireValidation(t *testing.T, err error, fields ...string) {
	t.Helper()
	verr, ok := err.(*validation.Error)
	require.True(t, ok, "expected *validation.Error, got %T: %v", err, err)

	got := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		got[i] = f.Field
	}
	require.Equal(t, fields, got)
}
