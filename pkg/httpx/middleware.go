package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with mws so that the first middleware listed is the
// outermost, i.e. it sees the request first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Recoverer turns a panic in a handler into a logged 500 response.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			slogx.FromContext(r.Context()).Error("panic serving request",
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			WriteMessage(w, http.StatusInternalServerError, MsgServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
