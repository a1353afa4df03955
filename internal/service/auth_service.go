package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"tzt-server/internal/auth"
	"tzt-server/internal/domain"
	"tzt-server/internal/repository"
)

// AuthResult bundles the authenticated user with a freshly minted token.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService describes credential registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type authService struct {
	users      repository.UserRepository
	tokens     *auth.Tokens
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, tokens *auth.Tokens, bcryptCost int) AuthService {
	return &authService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if len(name) < 2 {
		return nil, domain.NewValidationError("name", "name must be at least 2 characters")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password", "password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Concurrent duplicates land here too, via the unique index.
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{User: user.Sanitized(), Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// Users without a local credential cannot log in with a password.
	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{User: user.Sanitized(), Token: token}, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = *users[i].Sanitized()
	}
	return users, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("email", "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.NewValidationError("email", "email must be a valid address")
	}
	return nil
}
