package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/internal/todo/validation"
	"github.com/aussiebroadwan/todo/pkg/cryptox"
	"github.com/aussiebroadwan/todo/pkg/idx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

func (in *RegisterInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

type AuthService struct {
	Store     store.Store
	Hasher    *cryptox.PasswordHasher
	Signer    jwtx.Signer
	Validator *validation.Validator
	Issuer    string
	TokenTTL  time.Duration
}

// Register creates an account. The email is unique regardless of case.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	in.normalize()
	if err := s.Validator.Struct(in); err != nil {
		return domain.User{}, err
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return domain.User{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same address.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login checks the credentials and issues a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := s.Validator.Struct(in); err != nil {
		return Session{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("lookup email: %w", err)
	}

	if err := s.Hasher.Verify(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			slogx.FromContext(ctx).Info("login rejected", slog.String("user_id", user.ID))
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("verify password: %w", err)
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(user.ID, s.Issuer, ttl, time.Now())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign token: %w", err)
	}

	return Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.UTC(),
		User:      user,
	}, nil
}

// GetCurrentUser returns the account behind an authenticated request.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// ResolveSubject reports whether a token subject still names a user.
func (s *AuthService) ResolveSubject(ctx context.Context, subject string) (bool, error) {
	_, err := s.GetCurrentUser(ctx, subject)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUserNotFound):
		return false, nil
	}
	return false, err
}
