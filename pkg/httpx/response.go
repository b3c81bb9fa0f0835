package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

const MsgServerError = "Server error"

// Message is the minimal failure body: {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("httpx: empty request body")

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes {"message": msg} with the given status.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Message{Message: msg})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Every API response carries user data or tokens, so all of them use it.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON reads a single JSON value from the request body into v. Unknown
// fields are ignored.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	if dec.More() {
		return fmt.Errorf("httpx: body must contain a single JSON value")
	}
	return nil
}
