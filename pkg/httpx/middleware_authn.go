package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// SubjectResolver confirms that a token subject still names an account.
// A token for a deleted user is rejected even if its signature is fine.
type SubjectResolver interface {
	ResolveSubject(ctx context.Context, subject string) (bool, error)
}

// AuthnMiddleware requires a valid "Authorization: Bearer <jwt>" header. On
// success the user id and claims are stored in the request context and the
// request logger is tagged with the user. resolver may be nil.
func AuthnMiddleware(v jwtx.Verifier, resolver SubjectResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token", "Not authorized, no token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				if errors.Is(err, jwtx.ErrExpired) {
					writeBearerError(w, "token expired", "Not authorized, token expired")
					return
				}
				writeBearerError(w, "token verification failed", "Not authorized, token failed")
				return
			}

			userID := claims.Owner()
			if resolver != nil {
				found, err := resolver.ResolveSubject(ctx, userID)
				if err != nil {
					log.Error("resolve token subject", "user_id", userID, "err", err)
					WriteMessage(w, http.StatusInternalServerError, MsgServerError)
					return
				}
				if !found {
					writeBearerError(w, "unknown subject", "Not authorized, user not found")
					return
				}
			}

			ctx = contextWithAuth(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func contextWithAuth(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	return slogx.WithUserID(ctx, userID)
}

// writeBearerError sends a 401 with an RFC 6750 challenge and a JSON message.
func writeBearerError(w http.ResponseWriter, desc, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteMessage(w, http.StatusUnauthorized, msg)
}
