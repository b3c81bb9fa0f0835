package todosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError

	// RetryAfter is the Retry-After header on 429 responses.
	RetryAfter string
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("todo api: %d %s", e.StatusCode, e.Message)
	}

	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("todo api: %d %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// Field returns the message for the named field, or "".
func (e *APIError) Field(name string) string {
	for _, fe := range e.Errors {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RetryAfter: resp.Header.Get("Retry-After"),
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		apiErr.Message = errResp.Message
		apiErr.Errors = errResp.Errors
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
