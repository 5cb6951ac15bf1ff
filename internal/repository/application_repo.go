package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"officerent/internal/domain"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create вставляет заявку одним INSERT. Проверка "уже есть заявка" не
// делается отдельным SELECT: уникальный индекс idx_app_user_office отдаёт
// ошибку дубликата атомарно, распознаётся она через IsDuplicateKey.
func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	var a domain.Application
	tx := r.db.WithContext(ctx).First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *ApplicationRepository) GetAll(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.WithContext(ctx).Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	apps := make([]domain.Application, 0)
	err := r.db.WithContext(ctx).Where("id_user = ?", userID).Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status int) error {
	tx := r.db.WithContext(ctx).Model(&domain.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Application{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsDuplicateKey распознаёт нарушение уникального индекса у обоих
// поддерживаемых драйверов: pgconn для PostgreSQL, перевод gorm либо текст
// ошибки для SQLite (modernc не переводится в gorm.ErrDuplicatedKey).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
