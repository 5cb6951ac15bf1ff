package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"officerent/internal/domain"
)

type OfficeFilters struct {
	MinArea  float64
	MaxArea  float64
	MinPrice float64
	MaxPrice float64
}

type OfficeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{db: db}
}

func (r *OfficeRepository) Create(ctx context.Context, o *domain.Office) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OfficeRepository) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	var o domain.Office
	tx := r.db.WithContext(ctx).First(&o, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OfficeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Office{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *OfficeRepository) GetAll(ctx context.Context) ([]domain.Office, error) {
	var offices []domain.Office
	err := r.db.WithContext(ctx).Find(&offices).Error
	return offices, err
}

func (r *OfficeRepository) Update(ctx context.Context, o *domain.Office) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// Search фильтрует офисы по диапазонам площади и цены.
func (r *OfficeRepository) Search(ctx context.Context, f OfficeFilters) ([]domain.Office, error) {
	var offices []domain.Office
	err := r.db.WithContext(ctx).
		Where("area >= ? AND area <= ?", f.MinArea, f.MaxArea).
		Where("price >= ? AND price <= ?", f.MinPrice, f.MaxPrice).
		Find(&offices).Error
	return offices, err
}

// SearchByName ищет офисы по подстроке названия без учёта регистра,
// дефисов и пробелов.
func (r *OfficeRepository) SearchByName(ctx context.Context, query string) ([]domain.Office, error) {
	normalized := strings.ToLower(strings.NewReplacer("-", "", " ", "").Replace(query))

	var offices []domain.Office
	err := r.db.WithContext(ctx).
		Where("LOWER(REPLACE(REPLACE(name, '-', ''), ' ', '')) LIKE ?", "%"+normalized+"%").
		Find(&offices).Error
	return offices, err
}

// Delete удаляет офис вместе с заявками и избранным на него. Каталог фото
// чистит вызывающая сторона уже после успешного удаления записей.
func (r *OfficeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_office = ?", id).Delete(&domain.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("office_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Office{}, id).Error
	})
}
