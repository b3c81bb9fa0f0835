package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

// TodosHandler serves the owner-scoped todo endpoints. Every route sits
// behind AuthnMiddleware.
type TodosHandler struct {
	TodoService *service.TodoService
}

// HandleCreate handles POST /api/todos
//
//	@Summary		Create todo
//	@Description	Status defaults to pending and priority to medium.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		todosdk.CreateTodoRequest	true	"todo fields"
//	@Success		201		{object}	todosdk.TodoResponse		"created todo"
//	@Failure		400		{object}	todosdk.ErrorResponse		"validation failed"
//	@Failure		401		{object}	todosdk.ErrorResponse		"missing or invalid token"
//	@Failure		500		{object}	todosdk.ErrorResponse		"server error"
//	@Router			/api/todos [post].
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in service.CreateTodoInput
	if !decodeBody(w, r, &in) {
		return
	}

	todo, err := h.TodoService.Create(r.Context(), userID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, todosdk.TodoResponse{
		Success: true,
		Message: "Todo created successfully",
		Data:    toTodo(todo),
	})
}

// HandleList handles GET /api/todos
//
//	@Summary		List todos
//	@Description	Lists the caller's todos. Unknown sortBy falls back to createdAt, sortOrder to desc.
//	@Description	Page and limit default to 1 and 10; limit is capped.
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			status		query		string					false	"filter by status"		Enums(pending, in-progress, completed)
//	@Param			priority	query		string					false	"filter by priority"	Enums(low, medium, high)
//	@Param			page		query		int						false	"page number"			default(1)
//	@Param			limit		query		int						false	"items per page"		default(10)
//	@Param			sortBy		query		string					false	"sort field"			Enums(createdAt, updatedAt, dueDate, title, priority, status)
//	@Param			sortOrder	query		string					false	"sort direction"		Enums(asc, desc)
//	@Success		200			{object}	todosdk.TodoListResponse	"todos and pagination"
//	@Failure		400			{object}	todosdk.ErrorResponse		"invalid filter"
//	@Failure		401			{object}	todosdk.ErrorResponse		"missing or invalid token"
//	@Router			/api/todos [get].
func (h *TodosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	page, err := h.TodoService.List(r.Context(), userID, service.ListTodosInput{
		Status:    q.Get("status"),
		Priority:  q.Get("priority"),
		Page:      q.Get("page"),
		Limit:     q.Get("limit"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoListResponse{
		Success:    true,
		Data:       toTodos(page.Items),
		Pagination: toPagination(page.Pagination),
	})
}

// HandleGet handles GET /api/todos/{id}
//
//	@Summary	Get todo
//	@Tags		Todos
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string					true	"Todo ID (ULID)"
//	@Success	200	{object}	todosdk.TodoResponse	"todo"
//	@Failure	401	{object}	todosdk.ErrorResponse	"missing or invalid token"
//	@Failure	403	{object}	todosdk.ErrorResponse	"not the owner"
//	@Failure	404	{object}	todosdk.ErrorResponse	"not found"
//	@Router		/api/todos/{id} [get].
func (h *TodosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	todo, err := h.TodoService.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{
		Success: true,
		Data:    toTodo(todo),
	})
}

// HandleUpdate handles PUT /api/todos/{id}
//
//	@Summary		Update todo
//	@Description	Only fields present in the body change. An empty dueDate clears it.
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Todo ID (ULID)"
//	@Param			request	body		todosdk.UpdateTodoRequest	true	"fields to change"
//	@Success		200		{object}	todosdk.TodoResponse		"updated todo"
//	@Failure		400		{object}	todosdk.ErrorResponse		"validation failed"
//	@Failure		401		{object}	todosdk.ErrorResponse		"missing or invalid token"
//	@Failure		403		{object}	todosdk.ErrorResponse		"not the owner"
//	@Failure		404		{object}	todosdk.ErrorResponse		"not found"
//	@Router			/api/todos/{id} [put].
func (h *TodosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in service.UpdateTodoInput
	if !decodeBody(w, r, &in) {
		return
	}

	todo, err := h.TodoService.Update(r.Context(), userID, r.PathValue("id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{
		Success: true,
		Message: "Todo updated successfully",
		Data:    toTodo(todo),
	})
}

// HandleDelete handles DELETE /api/todos/{id}
//
//	@Summary	Delete todo
//	@Tags		Todos
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string					true	"Todo ID (ULID)"
//	@Success	200	{object}	todosdk.MessageResponse	"deleted"
//	@Failure	401	{object}	todosdk.ErrorResponse	"missing or invalid token"
//	@Failure	403	{object}	todosdk.ErrorResponse	"not the owner"
//	@Failure	404	{object}	todosdk.ErrorResponse	"not found"
//	@Router		/api/todos/{id} [delete].
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.TodoService.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.MessageResponse{
		Success: true,
		Message: "Todo deleted successfully",
	})
}

// HandleToggle handles PATCH /api/todos/{id}/toggle
//
//	@Summary		Toggle completion
//	@Description	Flips isCompleted. Status becomes completed, or pending when un-completing.
//	@Tags			Todos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string					true	"Todo ID (ULID)"
//	@Success		200	{object}	todosdk.TodoResponse	"toggled todo"
//	@Failure		401	{object}	todosdk.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	todosdk.ErrorResponse	"not the owner"
//	@Failure		404	{object}	todosdk.ErrorResponse	"not found"
//	@Router			/api/todos/{id}/toggle [patch].
func (h *TodosHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	todo, err := h.TodoService.Toggle(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TodoResponse{
		Success: true,
		Message: "Todo status toggled",
		Data:    toTodo(todo),
	})
}
