package http

import (
	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

func toUser(u domain.User) todosdk.User {
	return todosdk.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toTodo(t domain.Todo) todosdk.Todo {
	return todosdk.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// toTodos never returns nil so an empty page encodes as [].
func toTodos(todos []domain.Todo) []todosdk.Todo {
	out := make([]todosdk.Todo, len(todos))
	for i, t := range todos {
		out[i] = toTodo(t)
	}
	return out
}

func toPagination(p domain.Pagination) todosdk.Pagination {
	return todosdk.Pagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
	}
}
