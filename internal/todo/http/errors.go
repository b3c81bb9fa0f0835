package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/validation"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

const (
	msgValidationFailed = "Validation failed"
	msgInvalidJSON      = "Invalid JSON in request body"
	msgBodyTooLarge     = "Request body too large"
	msgRouteNotFound    = "Route not found"
)

// writeError maps service and validation errors to status codes. Anything
// unexpected is logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeValidation(w, verr)
	case errors.Is(err, service.ErrDuplicateEmail):
		httpx.WriteMessage(w, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrTodoNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Todo not found")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteMessage(w, http.StatusForbidden, "Not authorized to access this todo")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, httpx.MsgServerError)
	}
}

func writeValidation(w http.ResponseWriter, verr *validation.Error) {
	fields := make([]todosdk.FieldError, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = todosdk.FieldError{Field: f.Field, Message: f.Message}
	}
	httpx.WriteJSON(w, http.StatusBadRequest, todosdk.ErrorResponse{
		Message: msgValidationFailed,
		Errors:  fields,
	})
}

// decodeBody decodes the JSON body into v. On failure it writes the
// response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := httpx.DecodeJSON(w, r, v)
	if err == nil {
		return true
	}

	// A missing body decodes like {} so the field rules report what is absent.
	if errors.Is(err, httpx.ErrEmptyBody) {
		return true
	}

	if verr, ok := validation.FromJSON(err); ok {
		writeValidation(w, verr)
		return false
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.WriteMessage(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return false
	}

	slogx.FromContext(r.Context()).Debug("rejecting request body", "error", err)
	httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidJSON)
	return false
}

// requireUser returns the authenticated user id set by AuthnMiddleware.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Not authorized, no token")
		return "", false
	}
	return userID, true
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteMessage(w, http.StatusNotFound, msgRouteNotFound)
}
