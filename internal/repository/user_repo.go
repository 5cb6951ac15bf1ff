package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"officerent/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Where("token = ?", token).First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", strings.TrimSpace(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ExistsByTel(ctx context.Context, tel string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("tel = ?", strings.TrimSpace(tel)).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// ListNonAdmin возвращает всех обычных пользователей по возрастанию id.
func (r *UserRepository) ListNonAdmin(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("admin = ?", false).
		Order("id").
		Find(&users).Error
	return users, err
}

// SearchByPhone ищет обычных пользователей по подстроке телефона, дефисы и
// пробелы в обеих частях сравнения игнорируются.
func (r *UserRepository) SearchByPhone(ctx context.Context, phone string) ([]domain.User, error) {
	normalized := strings.NewReplacer("-", "", " ", "").Replace(phone)

	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("admin = ?", false).
		Where("REPLACE(REPLACE(tel, '-', ''), ' ', '') LIKE ?", "%"+normalized+"%").
		Find(&users).Error
	return users, err
}

// Delete удаляет пользователя вместе с его заявками и избранным.
// Всё в одной транзакции: либо каскад целиком, либо ничего.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_user = ?", id).Delete(&domain.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, id).Error
	})
}
