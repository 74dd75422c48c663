package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/pkg/cryptox"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
	"github.com/PadsterH2012/Idea-Incubator/pkg/slogx"
)

var (
	// ErrValidation reports missing or malformed input the client must fix.
	ErrValidation = errors.New("validation_error")
	// ErrConflict reports a username/email uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials covers both "no such user" and "wrong password";
	// callers cannot tell the cases apart.
	ErrInvalidCredentials = errors.New("invalid_credentials")
	// ErrUnauthorized reports a missing, expired or destroyed session.
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthService orchestrates registration, login/logout and the authorization
// guard every protected operation runs through.
type AuthService struct {
	Store    store.Store
	Sessions *SessionService
}

// Register creates a new user. All three fields are required; uniqueness of
// username and email is enforced by the store's constraints, so two
// concurrent registrations of the same name resolve to one success and one
// ErrConflict.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (idx.ID, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return idx.Zero, fmt.Errorf("%w: missing username, email, or password", ErrValidation)
	}
	if len(username) > domain.MaxUsernameLength {
		return idx.Zero, fmt.Errorf("%w: username exceeds %d characters", ErrValidation, domain.MaxUsernameLength)
	}
	if len(email) > domain.MaxEmailLength || !strings.Contains(email, "@") {
		return idx.Zero, fmt.Errorf("%w: invalid email", ErrValidation)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return idx.Zero, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return idx.Zero, fmt.Errorf("%w: username or email already taken", ErrConflict)
		}
		return idx.Zero, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return user.ID, nil
}

// Login verifies credentials and establishes a fresh session. An unknown
// username burns a dummy hash so the failure is indistinguishable from a
// wrong password, in cost as well as in the returned error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: missing username or password", ErrValidation)
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.DummyVerify(password)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		slogx.FromContext(ctx).Warn("failed login attempt", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := s.Sessions.Create(ctx, user.ID)
	if err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Logout destroys the session. Idempotent; logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Destroy(ctx, token)
}

// Authorize is the guard applied to every protected operation. It resolves
// the session token to a user id or fails with ErrUnauthorized; the transport
// layer decides whether that becomes a 401 or a redirect.
func (s *AuthService) Authorize(ctx context.Context, token string) (idx.ID, error) {
	userID, err := s.Sessions.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			return idx.Zero, ErrUnauthorized
		}
		return idx.Zero, err
	}
	return userID, nil
}

// GetUser loads the user behind an authorized id.
func (s *AuthService) GetUser(ctx context.Context, userID idx.ID) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Valid sessions always reference an existing user; a miss here
			// means the session outlived its user somehow.
			return domain.User{}, ErrUnauthorized
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateProfile changes username and email for the session's user. The
// current password is re-verified regardless of the session being valid.
func (s *AuthService) UpdateProfile(ctx context.Context, userID idx.ID, username, email, currentPassword string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || currentPassword == "" {
		return fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if len(username) > domain.MaxUsernameLength {
		return fmt.Errorf("%w: username exceeds %d characters", ErrValidation, domain.MaxUsernameLength)
	}
	if len(email) > domain.MaxEmailLength || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !cryptox.VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, username, email); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("%w: username or email already taken", ErrConflict)
		}
		return err
	}
	return nil
}
