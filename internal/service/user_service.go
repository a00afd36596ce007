package service

import (
	"context"

	"surveyforge/internal/domain"
	"surveyforge/internal/dto"
)

// UserService defines the interface for workspace member management
type UserService interface {
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	AddUser(ctx context.Context, req *dto.AddUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	repo domain.UserRepository
}

// NewUserService creates a new instance of userService
func NewUserService(repo domain.UserRepository) UserService {
	return &userService{repo: repo}
}

// GetCurrentUser implements UserService. A workspace with no members still
// yields a usable guest identity, so the caller never has to handle absence.
func (s *userService) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	user, err := s.repo.Current(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get current user", err)
	}
	return dto.FromDomainUser(user), nil
}

// ListUsers implements UserService
func (s *userService) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list users", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *dto.FromDomainUser(&users[i]))
	}
	return &dto.UserListResponse{Users: out, Total: len(out)}, nil
}

// AddUser implements UserService
func (s *userService) AddUser(ctx context.Context, req *dto.AddUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.Add(ctx, domain.UserDraft{
		Name:              req.Name,
		Email:             req.Email,
		Role:              domain.Role(req.Role),
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromDomainUser(user), nil
}

// UpdateUser implements UserService
func (s *userService) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	update := domain.UserUpdate{
		Name:              req.Name,
		Email:             req.Email,
		ProfilePictureURL: req.ProfilePictureURL,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}
	user, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return dto.FromDomainUser(user), nil
}

// DeleteUser implements UserService. The first listed member is the primary
// admin and cannot be removed.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
