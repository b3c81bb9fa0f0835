package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a transaction scoped store can hand out the same
// repos bound to the open transaction.
type Store interface {
	Users() Users
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. A nil return commits, anything
	// else rolls back.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

type Todos interface {
	// CreateTodo inserts t as given; the service fills ids, defaults and
	// timestamps.
	CreateTodo(ctx context.Context, t domain.Todo) error

	GetTodoByID(ctx context.Context, id string) (domain.Todo, error)

	// ListTodos returns one page of the owner's todos in the requested order.
	ListTodos(ctx context.Context, q domain.TodoQuery) ([]domain.Todo, error)

	// CountTodos counts every todo matching the filter, ignoring paging.
	CountTodos(ctx context.Context, f domain.TodoFilter) (int, error)

	// UpdateTodo overwrites the mutable columns of the row with t.ID.
	UpdateTodo(ctx context.Context, t domain.Todo) error

	DeleteTodo(ctx context.Context, id string) error
}
