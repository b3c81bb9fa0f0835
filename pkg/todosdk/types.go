package todosdk

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ============================================================================
// Resources
// ============================================================================

// User is the public view of an account. The password hash never leaves
// the server.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"      enums:"pending,in-progress,completed"`
	Priority    string     `json:"priority"    enums:"low,medium,high"`
	DueDate     *time.Time `json:"dueDate"`
	IsCompleted bool       `json:"isCompleted"`
	OwnerID     string     `json:"ownerId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// ============================================================================
// Requests
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name"     example:"Alice"`
	Email    string `json:"email"    example:"alice@example.com"`
	Password string `json:"password" example:"secret1"`
}

type LoginRequest struct {
	Email    string `json:"email"    example:"alice@example.com"`
	Password string `json:"password" example:"secret1"`
}

// CreateTodoRequest fields left empty take the server defaults. DueDate is
// an RFC 3339 timestamp or YYYY-MM-DD.
type CreateTodoRequest struct {
	Title       string `json:"title"                 example:"Buy milk"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"      enums:"pending,in-progress,completed"`
	Priority    string `json:"priority,omitempty"    enums:"low,medium,high"`
	DueDate     string `json:"dueDate,omitempty"     example:"2026-12-24"`
}

// UpdateTodoRequest sends only non-nil fields. An empty DueDate clears it.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"      enums:"pending,in-progress,completed"`
	Priority    *string `json:"priority,omitempty"    enums:"low,medium,high"`
	DueDate     *string `json:"dueDate,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

// ListTodosOptions maps to query parameters. Zero values are omitted.
type ListTodosOptions struct {
	Status    string
	Priority  string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// ============================================================================
// Envelopes
// ============================================================================

type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    User   `json:"data"`
}

type LoginData struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    LoginData `json:"data"`
}

type TodoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Todo   `json:"data"`
}

type TodoListResponse struct {
	Success    bool       `json:"success"`
	Data       []Todo     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// MessageResponse is a success envelope without data, e.g. after delete.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope. Errors is set for validation
// failures only.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz; only readyz fills Checks.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
