package repository

import (
	"context"

	"gorm.io/gorm"

	"officerent/internal/domain"
)

// FavoriteRepository определяет методы для работы с избранным
type FavoriteRepository interface {
	Add(ctx context.Context, userID, officeID int64) error
	Remove(ctx context.Context, userID, officeID int64) error
	OfficeIDs(ctx context.Context, userID int64) ([]int64, error)
	Exists(ctx context.Context, userID, officeID int64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add добавляет офис в избранное одним INSERT; повторное добавление
// отсечёт уникальный индекс idx_fav_user_office (см. IsDuplicateKey).
func (r *favoriteRepository) Add(ctx context.Context, userID, officeID int64) error {
	return r.db.WithContext(ctx).Create(&domain.Favorite{
		UserID:   userID,
		OfficeID: officeID,
	}).Error
}

// Remove удаляет офис из избранного. gorm.ErrRecordNotFound если офиса в
// избранном не было.
func (r *favoriteRepository) Remove(ctx context.Context, userID, officeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND office_id = ?", userID, officeID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// OfficeIDs возвращает id избранных офисов пользователя.
func (r *favoriteRepository) OfficeIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("office_id", &ids).Error
	return ids, err
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, officeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND office_id = ?", userID, officeID).
		Count(&count).Error
	return count > 0, err
}
