package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/sqlite/gen"
)

// todoColumns matches the field order of gen.Todo.
const todoColumns = `id, owner_id, title, description, status, priority, due_date, is_completed, created_at, updated_at`

// sortExpressions whitelists ORDER BY expressions. Priority sorts by rank,
// not alphabetically.
var sortExpressions = map[domain.SortField]string{
	domain.SortCreatedAt: "created_at",
	domain.SortUpdatedAt: "updated_at",
	domain.SortDueDate:   "due_date",
	domain.SortTitle:     "title",
	domain.SortStatus:    "status",
	domain.SortPriority:  "CASE priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 ELSE 0 END",
}

type todosRepo struct {
	db gen.DBTX
	q  *gen.Queries
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	err := r.q.CreateTodo(ctx, gen.CreateTodoParams{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     mapOptionalTime(t.DueDate),
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *todosRepo) GetTodoByID(ctx context.Context, id string) (domain.Todo, error) {
	row, err := r.q.GetTodoByID(ctx, id)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return mapTodo(row), nil
}

func (r *todosRepo) ListTodos(ctx context.Context, q domain.TodoQuery) ([]domain.Todo, error) {
	where, args := todoWhere(q.Filter)

	expr, ok := sortExpressions[q.SortBy]
	if !ok {
		expr = sortExpressions[domain.SortCreatedAt]
	}
	dir := "DESC"
	if q.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM todos%s ORDER BY %s %s, id %s LIMIT ? OFFSET ?",
		todoColumns, where, expr, dir, dir,
	)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0, q.Limit)
	for rows.Next() {
		var i gen.Todo
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Title,
			&i.Description,
			&i.Status,
			&i.Priority,
			&i.DueDate,
			&i.IsCompleted,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, mapTodo(i))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todosRepo) CountTodos(ctx context.Context, f domain.TodoFilter) (int, error) {
	where, args := todoWhere(f)

	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos"+where, args...).Scan(&count)
	return count, err
}

func (r *todosRepo) UpdateTodo(ctx context.Context, t domain.Todo) error {
	n, err := r.q.UpdateTodo(ctx, gen.UpdateTodoParams{
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     mapOptionalTime(t.DueDate),
		IsCompleted: t.IsCompleted,
		UpdatedAt:   t.UpdatedAt.UTC(),
		ID:          t.ID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *todosRepo) DeleteTodo(ctx context.Context, id string) error {
	n, err := r.q.DeleteTodo(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func todoWhere(f domain.TodoFilter) (string, []any) {
	clauses := []string{"owner_id = ?"}
	args := []any{f.OwnerID}

	if f.Status != nil {
		clauses = append(clauses, "status = ?")
		args = append(args, string(*f.Status))
	}
	if f.Priority != nil {
		clauses = append(clauses, "priority = ?")
		args = append(args, string(*f.Priority))
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
