package report

import (
	"context"

	"officerent/internal/domain"
)

// Отчёту нужны только листинги трёх хранилищ.

type UserLister interface {
	ListNonAdmin(ctx context.Context) ([]domain.User, error)
}

type OfficeLister interface {
	GetAll(ctx context.Context) ([]domain.Office, error)
}

type ApplicationLister interface {
	GetAll(ctx context.Context) ([]domain.Application, error)
}
