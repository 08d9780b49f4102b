package directory

import (
	"context"

	"github.com/stocktrack/backend/internal/domain/directory"
	"go.uber.org/zap"
)

// UserService implements the user directory use cases over a key-value
// backed repository.
type UserService struct {
	repo   directory.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(repo directory.UserRepository, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, logger: logger}
}

// CreateUser validates and stores a new directory entry
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*UserResponse, error) {
	user, err := directory.NewUser(input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("directory user created", zap.String("user_id", user.ID))

	resp := ToUserResponse(user)
	return &resp, nil
}

// GetUser returns one entry or NotFound
func (s *UserService) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// ListUsers returns every entry ordered by name
func (s *UserService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// DeleteUser removes one entry or fails with NotFound
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("directory user deleted", zap.String("user_id", id))
	return nil
}
