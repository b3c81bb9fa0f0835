package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/validation"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

const (
	DefaultPage        = 1
	DefaultLimit       = 10
	DefaultMaxPageSize = 100
)

type CreateTodoInput struct {
	Title       string  `json:"title" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate" validate:"omitempty,calendar"`
}

// UpdateTodoInput patches a todo. Nil fields are left alone; an empty
// dueDate clears it.
type UpdateTodoInput struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
	Status      *string `json:"status" validate:"omitnil,oneof=pending in-progress completed"`
	Priority    *string `json:"priority" validate:"omitnil,oneof=low medium high"`
	DueDate     *string `json:"dueDate" validate:"omitempty,calendar"`
	IsCompleted *bool   `json:"isCompleted"`
}

// ListTodosInput carries raw query string values. Paging and sort values
// that don't parse fall back to defaults; bad filters are rejected.
type ListTodosInput struct {
	Status    string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority  string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Page      string `json:"page"`
	Limit     string `json:"limit"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

type TodoService struct {
	Store       store.Store
	Validator   *validation.Validator
	MaxPageSize int
}

func (s *TodoService) Create(ctx context.Context, ownerID string, in CreateTodoInput) (domain.Todo, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := s.Validator.Struct(in); err != nil {
		return domain.Todo{}, err
	}

	now := time.Now().UTC()
	todo := domain.Todo{
		ID:          idx.New().String(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.StatusPending,
		Priority:    domain.PriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Status != "" {
		todo.Status = domain.Status(in.Status)
	}
	if in.Priority != "" {
		todo.Priority = domain.Priority(in.Priority)
	}
	if in.DueDate != nil && *in.DueDate != "" {
		due, err := validation.ParseDate(*in.DueDate)
		if err != nil {
			return domain.Todo{}, validation.Field("dueDate", "must be a valid date")
		}
		todo.DueDate = &due
	}

	if err := s.Store.Todos().CreateTodo(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("create todo: %w", err)
	}

	slogx.FromContext(ctx).Debug("todo created", slog.String("todo_id", todo.ID))
	return todo, nil
}

// List returns one page of the owner's todos and the paging metadata.
func (s *TodoService) List(ctx context.Context, ownerID string, in ListTodosInput) (domain.TodoPage, error) {
	in.Status = strings.TrimSpace(in.Status)
	in.Priority = strings.TrimSpace(in.Priority)
	if err := s.Validator.Struct(in); err != nil {
		return domain.TodoPage{}, err
	}

	filter := domain.TodoFilter{OwnerID: ownerID}
	if in.Status != "" {
		status := domain.Status(in.Status)
		filter.Status = &status
	}
	if in.Priority != "" {
		priority := domain.Priority(in.Priority)
		filter.Priority = &priority
	}

	page := positiveOr(in.Page, DefaultPage)
	limit := min(positiveOr(in.Limit, DefaultLimit), s.maxPageSize())

	total, err := s.Store.Todos().CountTodos(ctx, filter)
	if err != nil {
		return domain.TodoPage{}, fmt.Errorf("count todos: %w", err)
	}

	// Pages past the end are empty. Checking before computing the offset
	// also keeps (page-1)*limit from overflowing.
	todos := []domain.Todo{}
	if page-1 <= total/limit {
		todos, err = s.Store.Todos().ListTodos(ctx, domain.TodoQuery{
			Filter:    filter,
			SortBy:    domain.ParseSortField(in.SortBy),
			SortOrder: domain.ParseSortOrder(in.SortOrder),
			Limit:     limit,
			Offset:    (page - 1) * limit,
		})
		if err != nil {
			return domain.TodoPage{}, fmt.Errorf("list todos: %w", err)
		}
	}

	return domain.TodoPage{
		Items:      todos,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

func (s *TodoService) Get(ctx context.Context, ownerID, todoID string) (domain.Todo, error) {
	return loadOwned(ctx, s.Store.Todos(), ownerID, todoID)
}

func (s *TodoService) Update(ctx context.Context, ownerID, todoID string, in UpdateTodoInput) (domain.Todo, error) {
	in.Title = trimmed(in.Title)
	in.Description = trimmed(in.Description)
	if err := s.Validator.Struct(in); err != nil {
		return domain.Todo{}, err
	}

	var due *time.Time
	if in.DueDate != nil && *in.DueDate != "" {
		t, err := validation.ParseDate(*in.DueDate)
		if err != nil {
			return domain.Todo{}, validation.Field("dueDate", "must be a valid date")
		}
		due = &t
	}

	var out domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		todo, err := loadOwned(ctx, tx.Todos(), ownerID, todoID)
		if err != nil {
			return err
		}

		if in.Title != nil {
			todo.Title = *in.Title
		}
		if in.Description != nil {
			todo.Description = *in.Description
		}
		if in.Status != nil {
			todo.Status = domain.Status(*in.Status)
		}
		if in.Priority != nil {
			todo.Priority = domain.Priority(*in.Priority)
		}
		if in.DueDate != nil {
			todo.DueDate = due
		}
		if in.IsCompleted != nil {
			todo.IsCompleted = *in.IsCompleted
		}
		todo.UpdatedAt = time.Now().UTC()

		if err := tx.Todos().UpdateTodo(ctx, todo); err != nil {
			return fmt.Errorf("update todo: %w", err)
		}
		out = todo
		return nil
	})
	return out, err
}

func (s *TodoService) Delete(ctx context.Context, ownerID, todoID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := loadOwned(ctx, tx.Todos(), ownerID, todoID); err != nil {
			return err
		}
		if err := tx.Todos().DeleteTodo(ctx, todoID); err != nil {
			return fmt.Errorf("delete todo: %w", err)
		}
		return nil
	})
}

// Toggle flips completion. Status follows: completed when done, otherwise
// pending, so an in-progress todo toggled twice comes back as pending.
func (s *TodoService) Toggle(ctx context.Context, ownerID, todoID string) (domain.Todo, error) {
	var out domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		todo, err := loadOwned(ctx, tx.Todos(), ownerID, todoID)
		if err != nil {
			return err
		}

		todo.SetCompleted(!todo.IsCompleted)
		todo.UpdatedAt = time.Now().UTC()

		if err := tx.Todos().UpdateTodo(ctx, todo); err != nil {
			return fmt.Errorf("toggle todo: %w", err)
		}
		out = todo
		return nil
	})
	return out, err
}

// loadOwned fetches a todo for ownerID: existence first, then ownership.
// Ids that are not ULIDs can never exist, so they report not found.
func loadOwned(ctx context.Context, todos store.Todos, ownerID, todoID string) (domain.Todo, error) {
	if _, err := idx.Parse(todoID); err != nil {
		return domain.Todo{}, ErrTodoNotFound
	}

	todo, err := todos.GetTodoByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Todo{}, ErrTodoNotFound
		}
		return domain.Todo{}, fmt.Errorf("get todo: %w", err)
	}

	if todo.OwnerID != ownerID {
		slogx.FromContext(ctx).Warn("todo access denied",
			slog.String("todo_id", todoID),
			slog.String("owner_id", todo.OwnerID),
		)
		return domain.Todo{}, ErrForbidden
	}
	return todo, nil
}

func (s *TodoService) maxPageSize() int {
	if s.MaxPageSize > 0 {
		return s.MaxPageSize
	}
	return DefaultMaxPageSize
}

func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
