/*
Package todosdk is a Go client for the todo API.

# Client vs Session

  - Client: unauthenticated calls (register, login, health)
  - Session: calls made with a bearer token (current user, todos)

Register, log in, and work with todos:

	client := todosdk.NewClient("http://localhost:8080")

	_, err := client.Register(ctx, todosdk.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	session, err := client.Login(ctx, "alice@example.com", "secret1")

	todo, err := session.CreateTodo(ctx, todosdk.CreateTodoRequest{
		Title:    "Buy milk",
		Priority: todosdk.PriorityHigh,
	})

	page, err := session.ListTodos(ctx, todosdk.ListTodosOptions{Status: todosdk.StatusPending})

Tokens are not refreshed. When one expires, log in again.

# Errors

Non-2xx responses come back as *APIError carrying the status code, the
server message and any field errors:

	var apiErr *todosdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		for _, fe := range apiErr.Errors {
			fmt.Printf("%s: %s\n", fe.Field, fe.Message)
		}
	}

Sessions are safe for concurrent use.
*/
package todosdk
