package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pnl_tracker/internal/domain"
)

type UserService struct {
	userRepo domain.UserRepository
}

func NewUserService(userRepo domain.UserRepository) (*UserService, error) {
	if userRepo == nil {
		return nil, errors.New("user repository required")
	}
	return &UserService{userRepo: userRepo}, nil
}

// CreateUser registers a user and returns it with its session token.
func (s *UserService) CreateUser(ctx context.Context, email, name string, autoSnapshot bool) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, domain.NewValidationError("email", "required")
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		SessionToken: newSessionToken(),
		AutoSnapshot: autoSnapshot,
		LastSeen:     time.Now().UTC(),
	}
	if err := s.userRepo.UpsertUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return s.userRepo.GetUser(ctx, user.UserID)
}

// Authenticate resolves a bearer token to its user or fails with domain.ErrUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	return s.userRepo.GetUserBySessionToken(ctx, token)
}

func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	return s.userRepo.GetUser(ctx, userID)
}

func newSessionToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
