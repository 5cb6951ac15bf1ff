package auth

import (
	"context"

	"officerent/internal/domain"
)

// UserRepositoryInterface — only the methods auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByToken(ctx context.Context, token string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByTel(ctx context.Context, tel string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	ListNonAdmin(ctx context.Context) ([]domain.User, error)
	SearchByPhone(ctx context.Context, phone string) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// FavoriteReader — избранное нужно только для заполнения поля offices
// в ответах про пользователя.
type FavoriteReader interface {
	OfficeIDs(ctx context.Context, userID int64) ([]int64, error)
}
