package todosdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// Session makes requests with a bearer token.
type Session struct {
	client *Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	user      User
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt is zero for sessions built with NewSessionFromToken.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// User is the account returned at login.
func (s *Session) User() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Me fetches the current user and refreshes the cached copy.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = out.Data
	s.mu.Unlock()

	return &out.Data, nil
}

func (s *Session) CreateTodo(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/api/todos", req)
	if err != nil {
		return nil, err
	}

	var out TodoResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Session) ListTodos(ctx context.Context, opts ListTodosOptions) (*TodoListResponse, error) {
	path := "/api/todos"
	if q := opts.query().Encode(); q != "" {
		path += "?" + q
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out TodoListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetTodo(ctx context.Context, id string) (*Todo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, todoPath(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var out TodoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Session) UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) (*Todo, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, todoPath(id), req)
	if err != nil {
		return nil, err
	}

	var out TodoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (s *Session) DeleteTodo(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, todoPath(id), nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// ToggleTodo flips completion; status becomes completed or pending.
func (s *Session) ToggleTodo(ctx context.Context, id string) (*Todo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, todoPath(id)+"/toggle", nil, nil)
	if err != nil {
		return nil, err
	}

	var out TodoResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func todoPath(id string) string {
	return "/api/todos/" + url.PathEscape(id)
}

func (o ListTodosOptions) query() url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("status", o.Status)
	set("priority", o.Priority)
	set("sortBy", o.SortBy)
	set("sortOrder", o.SortOrder)
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}
