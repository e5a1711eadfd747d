package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}
