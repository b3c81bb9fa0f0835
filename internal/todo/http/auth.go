package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

// AuthHandler serves registration, login and the current user.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register
//	@Description	Creates an account. Emails are unique regardless of case. Does not log in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.RegisterRequest	true	"name, email, password"
//	@Success		201		{object}	todosdk.UserResponse	"created user"
//	@Failure		400		{object}	todosdk.ErrorResponse	"validation failed or email taken"
//	@Failure		429		{object}	todosdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	todosdk.ErrorResponse	"server error"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if !decodeBody(w, r, &in) {
		return
	}

	user, err := h.AuthService.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, todosdk.UserResponse{
		Success: true,
		Message: "User registered successfully",
		Data:    toUser(user),
	})
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Login
//	@Description	Exchanges email and password for a signed bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	todosdk.LoginResponse	"token, expiresAt, user"
//	@Failure		400		{object}	todosdk.ErrorResponse	"validation failed"
//	@Failure		401		{object}	todosdk.ErrorResponse	"invalid email or password"
//	@Failure		429		{object}	todosdk.ErrorResponse	"rate limited"
//	@Failure		500		{object}	todosdk.ErrorResponse	"server error"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if !decodeBody(w, r, &in) {
		return
	}

	sess, err := h.AuthService.Login(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.LoginResponse{
		Success: true,
		Message: "Login successful",
		Data: todosdk.LoginData{
			Token:     sess.Token,
			ExpiresAt: sess.ExpiresAt,
			User:      toUser(sess.User),
		},
	})
}

// HandleMe handles GET /api/auth/me
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	todosdk.UserResponse	"current user"
//	@Failure		401	{object}	todosdk.ErrorResponse	"missing or invalid token"
//	@Failure		404	{object}	todosdk.ErrorResponse	"user not found"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	user, err := h.AuthService.GetCurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.UserResponse{
		Success: true,
		Data:    toUser(user),
	})
}
