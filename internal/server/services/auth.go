// Package services contains server-side business logic. AuthService covers
// registration and login; PostService covers post authoring.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oleksir/inkpad/internal/common"
	"github.com/oleksir/inkpad/internal/server/auth"
	"github.com/oleksir/inkpad/internal/server/models"
	"github.com/oleksir/inkpad/internal/server/password"
	"github.com/oleksir/inkpad/internal/server/repositories/users"
	"github.com/oleksir/inkpad/internal/server/validation"
)

// User-facing auth messages. The rendering layer shows them verbatim next
// to the re-displayed form.
const (
	MsgUsernameTaken   = "Username already exists"
	MsgUserNotFound    = "User not found"
	MsgInvalidPassword = "Invalid password"
)

// AuthResult is the success outcome of Register or Login: the user record
// and a freshly issued session token for the cookie transport.
type AuthResult struct {
	User  *models.User
	Token string
}

// AuthService orchestrates validation, hashing, the credential store, and
// the token codec. User-facing failures are returned as an ordered []string
// of messages; the error return is reserved for infrastructure failures.
type AuthService struct {
	users  users.Repository
	hasher *password.Hasher
	tokens *auth.TokenCodec
}

func NewAuthService(users users.Repository, hasher *password.Hasher, tokens *auth.TokenCodec) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register validates the credentials, checks username availability, and on
// success stores the user and issues a session token.
//
// The availability check and the insert are not atomic: two identical
// concurrent registrations can both pass the check. The unique index on
// users.username catches the loser, and that failure is reported with the
// same message as the pre-check.
func (s *AuthService) Register(ctx context.Context, username, plaintext string) (*AuthResult, []string, error) {
	username = strings.TrimSpace(username)

	errs := validation.Username(username)
	errs = append(errs, validation.Password(plaintext)...)

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		errs = append(errs, MsgUsernameTaken)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, nil, fmt.Errorf("checking username: %w", err)
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			// Lost the check-then-insert race.
			return nil, []string{MsgUsernameTaken}, nil
		}
		return nil, nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("issuing token: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil, nil
}

// Login validates the credentials, looks the user up, verifies the password,
// and on success issues a session token. A missing user and a wrong password
// produce different messages; that distinction is inherited behavior.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (*AuthResult, []string, error) {
	username = strings.TrimSpace(username)

	errs := validation.Username(username)
	errs = append(errs, validation.Password(plaintext)...)
	if len(errs) > 0 {
		return nil, errs, nil
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, []string{MsgUserNotFound}, nil
		}
		return nil, nil, fmt.Errorf("looking up user: %w", err)
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, []string{MsgInvalidPassword}, nil
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("issuing token: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil, nil
}
