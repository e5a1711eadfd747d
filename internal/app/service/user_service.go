package service

import (
	"context"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

// referenceUsers is the static read-only user set served by the API. Users
// are not a persisted collection; they exist only for assignment and display.
var referenceUsers = []domain.User{
	{ID: "user1", Name: "John Doe"},
	{ID: "user2", Name: "Jane Smith"},
	{ID: "user3", Name: "Bob Johnson"},
	{ID: "user4", Name: "Alice Williams"},
}

type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, len(referenceUsers))
	copy(users, referenceUsers)
	return users, nil
}

var _ ports.UserService = (*UserService)(nil)
