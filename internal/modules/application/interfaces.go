package application

import (
	"context"

	"officerent/internal/domain"
)

// ApplicationRepository defines the interface for application operations
type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.Application) error
	GetAll(ctx context.Context) ([]domain.Application, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status int) error
	Delete(ctx context.Context, id int64) error
}

// UserResolver — сервису нужен только поиск пользователя по токену.
type UserResolver interface {
	GetByToken(ctx context.Context, token string) (*domain.User, error)
}
