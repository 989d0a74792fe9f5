package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/barrovivo/backend/internal/domain/identity"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenIssuer creates an access token for an authenticated user
type TokenIssuer interface {
	Issue(user *identity.User) (string, error)
}

// RegisterInput holds a new account submission
type RegisterInput struct {
	Email     string `json:"correo" binding:"required,email,max=254"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"nombres" binding:"required,max=120"`
	LastName  string `json:"apellidos" binding:"required,max=120"`
}

// AuthResult is a logged-in user with their access token
type AuthResult struct {
	User  *identity.User
	Token string
}

// Service manages storefront accounts
type Service struct {
	users  identity.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	logger *zap.Logger
}

// NewService creates an identity Service
func NewService(
	users identity.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an account and returns it logged in
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(email, hash, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	return &AuthResult{User: user, Token: token}, nil
}

// Login authenticates by email and password
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	if !user.Active {
		return nil, shared.ErrUnauthorized
	}
	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return nil, shared.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Get returns a user by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	return s.users.FindByID(ctx, id)
}
