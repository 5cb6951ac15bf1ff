package favorite

import (
	"context"

	"officerent/internal/domain"
)

type FavoriteRepositoryInterface interface {
	Add(ctx context.Context, userID, officeID int64) error
	Remove(ctx context.Context, userID, officeID int64) error
	OfficeIDs(ctx context.Context, userID int64) ([]int64, error)
}

type UserResolver interface {
	GetByToken(ctx context.Context, token string) (*domain.User, error)
}

type OfficeChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
