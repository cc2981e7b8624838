package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/user"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type AuthService struct {
	userRepo user.Repository
	logger   *logging.Logger
}

func NewAuthService(userRepo user.Repository, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login matches the credentials verbatim and returns the user without its password.
func (s *AuthService) Login(ctx context.Context, username, password string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	if strings.TrimSpace(username) == "" || password == "" {
		return user.User{}, failure.Validation("Username and password are required")
	}

	item, found, err := s.userRepo.GetByCredentials(ctx, username, password)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by credentials: %w", err)
	}
	if !found {
		s.logger.WarnContext(ctx, "login rejected", "username", username)
		return user.User{}, failure.New(failure.ErrUnauthorized, "Invalid credentials")
	}

	item.Password = ""
	return item, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.GetUser", attribute.String("user.id", userID))
	defer span.End()

	item, found, err := s.userRepo.GetByID(ctx, strings.TrimSpace(userID))
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return user.User{}, failure.NotFound("User not found")
	}

	item.Password = ""
	return item, nil
}
