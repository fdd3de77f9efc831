package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vbonduro/stashkeep/internal/domain"
	"github.com/vbonduro/stashkeep/internal/session"
)

var (
	// ErrUsernameTaken is returned by Signup when the username exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned by Login for a bad username or
	// password, without saying which.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// userRepository is the subset of store.UserStore that AuthService requires.
type userRepository interface {
	Create(ctx context.Context, username, email, password string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// accountRepository is the subset of store.AccountStore that AuthService requires.
type accountRepository interface {
	Create(ctx context.Context, userID int64, accountName string) (*domain.Account, error)
}

type AuthService struct {
	users    userRepository
	accounts accountRepository
	profiles profileRepository
	sessions session.Store
	logger   *slog.Logger
}

func NewAuthService(
	users userRepository,
	accounts accountRepository,
	profiles profileRepository,
	sessions session.Store,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		accounts: accounts,
		profiles: profiles,
		sessions: sessions,
		logger:   logger,
	}
}

// Signup registers a user, creates their account record and first profile
// (named after the username), and opens a session with that profile already
// active.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (string, error) {
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("failed to check username: %w", err)
	}

	user, err := s.users.Create(ctx, username, email, password)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.accounts.Create(ctx, user.ID, username); err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	profile, err := s.profiles.Create(ctx, uuid.NewString(), user.ID, username)
	if err != nil {
		return "", fmt.Errorf("failed to create first profile: %w", err)
	}

	token, err := s.sessions.Create(ctx, session.Data{UserID: user.ID, ProfileID: profile.ProfileID})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("user signed up", "user_id", user.ID, "profile_id", profile.ProfileID)
	return token, nil
}

// Login verifies credentials and opens a session with no profile bound yet;
// the profile resolver binds one on the first profile-scoped request.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.Authenticate(ctx, username, password)
	if errors.Is(err, domain.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	token, err := s.sessions.Create(ctx, session.Data{UserID: user.ID})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Logout discards the session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
