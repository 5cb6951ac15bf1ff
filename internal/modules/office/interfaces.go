package office

import (
	"context"

	"officerent/internal/domain"
	"officerent/internal/repository"
)

// OfficeRepositoryInterface — only the methods office service uses
type OfficeRepositoryInterface interface {
	Create(ctx context.Context, o *domain.Office) error
	GetByID(ctx context.Context, id int64) (*domain.Office, error)
	GetAll(ctx context.Context) ([]domain.Office, error)
	Update(ctx context.Context, o *domain.Office) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f repository.OfficeFilters) ([]domain.Office, error)
	SearchByName(ctx context.Context, query string) ([]domain.Office, error)
}
