package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Olelouer/backend-chatop/internal/auth/domain"
	"github.com/Olelouer/backend-chatop/internal/auth/dto"
	autherror "github.com/Olelouer/backend-chatop/internal/errors"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates a new identity and returns a token for it. The plaintext
// password only exists on the stack of this call; just its bcrypt hash is
// persisted.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if existingUser != nil {
		return "", autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return "", err
	}

	return s.tokens.Issue(user.Email, nil, s.tokens.Expiry())
}

// Login verifies the credentials and returns a token on success. An unknown
// email and a wrong password fail identically so the response never reveals
// whether an account exists.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return "", autherror.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email, nil, s.tokens.Expiry())
}
