package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	todohttp "github.com/aussiebroadwan/todo/internal/todo/http"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/todo/internal/todo/validation"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "router-test-secret-0123456789abcdef"
	testIssuer  = "todo-test"
	testVersion = "v0.0.0-test"
)

// newServer starts a fresh router per test so rate limit buckets never
// carry over between tests.
func newServer(t *testing.T) (*httptest.Server, *todosdk.Client) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256("", []byte(testSecret))
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256([]byte(testSecret), testIssuer)

	v := validation.New()
	router := todohttp.NewRouter(signer, verifier, testVersion, st, slogx.Discard())
	router.AuthService = &service.AuthService{
		Store:     st,
		Hasher:    cryptox.NewPasswordHasher(cryptox.Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1}, ""),
		Signer:    signer,
		Validator: v,
		Issuer:    testIssuer,
		TokenTTL:  time.Hour,
	}
	router.TodoService = &service.TodoService{
		Store:       st,
		Validator:   v,
		MaxPageSize: 100,
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, todosdk.NewClient(srv.URL)
}

func signUp(t *testing.T, c *todosdk.Client, name, email string) *todosdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := c.Register(ctx, todosdk.RegisterRequest{Name: name, Email: email, Password: "secret1"})
	require.NoError(t, err)

	sess, err := c.Login(ctx, email, "secret1")
	require.NoError(t, err)
	return sess
}

func requireAPIError(t *testing.T, err error, status int, message string) *todosdk.APIError {
	t.Helper()
	var apiErr *todosdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *todosdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	if message != "" {
		require.Equal(t, message, apiErr.Message)
	}
	return apiErr
}

func rawRequest(t *testing.T, method, url, token, body string) (*http.Response, string) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestTodoLifecycle(t *testing.T) {
	_, c := newServer(t)
	ctx := context.Background()

	sess := signUp(t, c, "Alice", "alice@example.com")
	require.NotEmpty(t, sess.Token())
	require.True(t, sess.ExpiresAt().After(time.Now()))
	require.Equal(t, "alice@example.com", sess.User().Email)

	me, err := sess.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alice", me.Name)

	created, err := sess.CreateTodo(ctx, todosdk.CreateTodoRequest{
		Title:   "Buy milk",
		DueDate: "2026-12-24",
	})
	require.NoError(t, err)
	require.Equal(t, todosdk.StatusPending, created.Status)
	require.Equal(t, todosdk.PriorityMedium, created.Priority)
	require.False(t, created.IsCompleted)
	require.Equal(t, me.ID, created.OwnerID)
	require.NotNil(t, created.DueDate)
	require.Equal(t, "2026-12-24", created.DueDate.UTC().Format("2006-01-02"))

	got, err := sess.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	updated, err := sess.UpdateTodo(ctx, created.ID, todosdk.UpdateTodoRequest{
		Priority: ptr(todosdk.PriorityHigh),
		DueDate:  ptr(""),
	})
	require.NoError(t, err)
	require.Equal(t, todosdk.PriorityHigh, updated.Priority)
	require.Equal(t, "Buy milk", updated.Title)
	require.Nil(t, updated.DueDate)

	toggled, err := sess.ToggleTodo(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, toggled.IsCompleted)
	require.Equal(t, todosdk.StatusCompleted, toggled.Status)

	toggled, err = sess.ToggleTodo(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, toggled.IsCompleted)
	require.Equal(t, todosdk.StatusPending, toggled.Status)

	list, err := sess.ListTodos(ctx, todosdk.ListTodosOptions{})
	require.NoError(t, err)
	require.True(t, list.Success)
	require.Len(t, list.Data, 1)
	require.Equal(t, todosdk.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 10}, list.Pagination)

	require.NoError(t, sess.DeleteTodo(ctx, created.ID))

	_, err = sess.GetTodo(ctx, created.ID)
	requireAPIError(t, err, http.StatusNotFound, "Todo not found")

	list, err = sess.ListTodos(ctx, todosdk.ListTodosOptions{})
	require.NoError(t, err)
	require.NotNil(t, list.Data)
	require.Empty(t, list.Data)
	require.Equal(t, 0, list.Pagination.TotalPages)
}

func TestListTodosQuery(t *testing.T) {
	_, c := newServer(t)
	ctx := context.Background()
	sess := signUp(t, c, "Alice", "alice@example.com")

	for _, p := range []string{"low", "high", "medium", "high"} {
		_, err := sess.CreateTodo(ctx, todosdk.CreateTodoRequest{Title: p + " task", Priority: p})
		require.NoError(t, err)
	}

	t.Run("filter by priority", func(t *testing.T) {
		list, err := sess.ListTodos(ctx, todosdk.ListTodosOptions{Priority: todosdk.PriorityHigh})
		require.NoError(t, err)
		require.Len(t, list.Data, 2)
		require.Equal(t, 2, list.Pagination.TotalItems)
	})

	t.Run("sort by priority ascending", func(t *testing.T) {
		list, err := sess.ListTodos(ctx, todosdk.ListTodosOptions{SortBy: "priority", SortOrder: "asc"})
		require.NoError(t, err)

		got := make([]string, len(list.Data))
		for i, td := range list.Data {
			got[i] = td.Priority
		}
		require.Equal(t, []string{"low", "medium", "high", "high"}, got)
	})

	t.Run("paging", func(t *testing.T) {
		list, err := sess.ListTodos(ctx, todosdk.ListTodosOptions{Page: 2, Limit: 3})
		require.NoError(t, err)
		require.Len(t, list.Data, 1)
		require.Equal(t, todosdk.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 4, ItemsPerPage: 3}, list.Pagination)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		_, err := sess.ListTodos(ctx, todosdk.ListTodosOptions{Status: "archived"})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, "Validation failed")
		require.NotEmpty(t, apiErr.Field("status"))
	})
}

func TestAuthErrors(t *testing.T) {
	srv, c := newServer(t)
	ctx := context.Background()
	signUp(t, c, "Alice", "alice@example.com")

	t.Run("duplicate email ignores case", func(t *testing.T) {
		_, err := c.Register(ctx, todosdk.RegisterRequest{Name: "Alice", Email: "ALICE@example.com", Password: "secret1"})
		requireAPIError(t, err, http.StatusBadRequest, "User with this email already exists")
	})

	t.Run("register validation lists every field", func(t *testing.T) {
		_, err := c.Register(ctx, todosdk.RegisterRequest{Name: "A", Email: "nope", Password: "123"})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, "Validation failed")
		require.Equal(t, "must be at least 2 characters", apiErr.Field("name"))
		require.Equal(t, "must be a valid email address", apiErr.Field("email"))
		require.Equal(t, "must be at least 6 characters", apiErr.Field("password"))
	})

	t.Run("empty register body reports every field", func(t *testing.T) {
		resp, body := rawRequest(t, http.MethodPost, srv.URL+"/api/auth/register", "", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Contains(t, body, `"message":"Validation failed"`)
		require.Contains(t, body, `"name is required"`)
		require.Contains(t, body, `"email is required"`)
		require.Contains(t, body, `"password is required"`)
	})

	t.Run("oversized login body is too large", func(t *testing.T) {
		payload := `{"email":"alice@example.com","password":"` + strings.Repeat("x", 1<<20) + `"}`
		resp, body := rawRequest(t, http.MethodPost, srv.URL+"/api/auth/login", "", payload)
		require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		require.JSONEq(t, `{"message":"Request body too large"}`, body)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, err := c.Login(ctx, "alice@example.com", "wrong-password")
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid email or password")

		_, err = c.Login(ctx, "nobody@example.com", "secret1")
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid email or password")
	})

	t.Run("protected routes need a token", func(t *testing.T) {
		resp, body := rawRequest(t, http.MethodGet, srv.URL+"/api/todos", "", "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.JSONEq(t, `{"message":"Not authorized, no token"}`, body)

		_, err := c.NewSessionFromToken("not-a-jwt").Me(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, "Not authorized, token failed")
	})

	t.Run("token from another issuer is rejected", func(t *testing.T) {
		signer, err := jwtx.NewSignerHS256("", []byte(testSecret))
		require.NoError(t, err)
		token, err := signer.Sign(jwtx.NewSessionClaims("someone", "other-issuer", time.Hour, time.Now()))
		require.NoError(t, err)

		_, err = c.NewSessionFromToken(token).Me(ctx)
		requireAPIError(t, err, http.StatusUnauthorized, "")
	})
}

func TestTodoOwnership(t *testing.T) {
	_, c := newServer(t)
	ctx := context.Background()

	alice := signUp(t, c, "Alice", "alice@example.com")
	bob := signUp(t, c, "Bob", "bob@example.com")

	todo, err := alice.CreateTodo(ctx, todosdk.CreateTodoRequest{Title: "Private"})
	require.NoError(t, err)

	_, err = bob.GetTodo(ctx, todo.ID)
	requireAPIError(t, err, http.StatusForbidden, "Not authorized to access this todo")

	_, err = bob.UpdateTodo(ctx, todo.ID, todosdk.UpdateTodoRequest{Title: ptr("Mine now")})
	requireAPIError(t, err, http.StatusForbidden, "Not authorized to access this todo")

	_, err = bob.ToggleTodo(ctx, todo.ID)
	requireAPIError(t, err, http.StatusForbidden, "")

	err = bob.DeleteTodo(ctx, todo.ID)
	requireAPIError(t, err, http.StatusForbidden, "")

	list, err := bob.ListTodos(ctx, todosdk.ListTodosOptions{})
	require.NoError(t, err)
	require.Empty(t, list.Data)

	got, err := alice.GetTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.Equal(t, "Private", got.Title)
}

func TestTodoRequestErrors(t *testing.T) {
	srv, c := newServer(t)
	ctx := context.Background()
	sess := signUp(t, c, "Alice", "alice@example.com")

	t.Run("create validation", func(t *testing.T) {
		_, err := sess.CreateTodo(ctx, todosdk.CreateTodoRequest{Title: "", Priority: "urgent", DueDate: "someday"})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, "Validation failed")
		require.Equal(t, "title is required", apiErr.Field("title"))
		require.Equal(t, "must be one of: low, medium, high", apiErr.Field("priority"))
		require.Equal(t, "must be a valid date", apiErr.Field("dueDate"))
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		_, err := sess.GetTodo(ctx, "not-an-id")
		requireAPIError(t, err, http.StatusNotFound, "Todo not found")
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := sess.ToggleTodo(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		requireAPIError(t, err, http.StatusNotFound, "Todo not found")
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		resp, body := rawRequest(t, http.MethodPost, srv.URL+"/api/todos", sess.Token(), `{"title":`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.JSONEq(t, `{"message":"Invalid JSON in request body"}`, body)
	})

	t.Run("empty body is validated as an empty object", func(t *testing.T) {
		resp, body := rawRequest(t, http.MethodPost, srv.URL+"/api/todos", sess.Token(), "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.JSONEq(t, `{"message":"Validation failed","errors":[{"field":"title","message":"title is required"}]}`, body)
	})

	t.Run("wrong JSON type is a field error", func(t *testing.T) {
		resp, body := rawRequest(t, http.MethodPost, srv.URL+"/api/todos", sess.Token(), `{"title":42}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.JSONEq(t, `{"message":"Validation failed","errors":[{"field":"title","message":"must be a string"}]}`, body)
	})

	t.Run("responses are not cached", func(t *testing.T) {
		resp, _ := rawRequest(t, http.MethodGet, srv.URL+"/api/todos", sess.Token(), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	})
}

func TestHealthAndFallback(t *testing.T) {
	srv, c := newServer(t)
	ctx := context.Background()

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, testVersion, live.Version)
	require.Nil(t, live.Checks)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)

	for _, path := range []string{"/nope", "/api/unknown"} {
		resp, body := rawRequest(t, http.MethodGet, srv.URL+path, "", "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		require.JSONEq(t, `{"message":"Route not found"}`, body)
	}

	resp, _ := rawRequest(t, http.MethodGet, srv.URL+"/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = rawRequest(t, http.MethodGet, srv.URL+"/livez", "", "")
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func ptr[T any](v T) *T { return &v }
