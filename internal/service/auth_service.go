package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"company-cms/internal/auth"
	"company-cms/internal/domain"
	"company-cms/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAccountDisabled indicates login by a deactivated account.
	ErrAccountDisabled = errors.New("user account is disabled")
)

// AuthService describes user lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	ResolveSubject(ctx context.Context, subject string) (*domain.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a user and returns it with a freshly issued token. The
// first user ever registered is granted admin rights. The pre-insert count is
// only an optimization hint for that rule; uniqueness races resolve at the
// store's UNIQUE constraints and surface as domain.ErrConflict.
func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := domain.ValidateRegistration(username, email, password); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      count == 0,
		IsActive:     true,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, "", err
	}
	return sanitizeUser(user), token, nil
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrAccountDisabled
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, "", err
	}
	return sanitizeUser(user), token, nil
}

// ResolveSubject maps a verified token subject back to its user record.
func (s *authService) ResolveSubject(ctx context.Context, subject string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

// sanitizeUser strips the password hash before the record leaves the service.
func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clean := *user
	clean.PasswordHash = ""
	return &clean
}
