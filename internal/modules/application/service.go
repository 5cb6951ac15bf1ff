package application

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"officerent/internal/domain"
	"officerent/internal/repository"
)

type Service struct {
	apps       ApplicationRepository
	users      UserResolver
	adminToken string
}

func NewService(apps ApplicationRepository, users UserResolver, adminToken string) *Service {
	return &Service{
		apps:       apps,
		users:      users,
		adminToken: adminToken,
	}
}

// Create заводит заявку пользователя на офис со статусом "в процессе".
// Администратору заявки запрещены. Существование офиса здесь не
// проверяется — так вёл себя API всегда, клиенты на это завязаны.
// Дубликат по паре (пользователь, офис) ловится уникальным индексом при
// вставке, без предварительного SELECT, поэтому гонка двух одинаковых
// запросов даёт ровно одну заявку.
func (s *Service) Create(ctx context.Context, token string, officeID int64) error {
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if token == s.adminToken {
		return ErrAdminForbidden
	}

	app := &domain.Application{
		UserID:   user.ID,
		OfficeID: officeID,
		Status:   domain.ApplicationPending,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		if repository.IsDuplicateKey(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// SetStatus записывает статус как есть: сюда исторически может прийти
// любое целое, не только 0/1/2. Возвращает true, если заявка отменена.
func (s *Service) SetStatus(ctx context.Context, id int64, status int) (cancelled bool, err error) {
	if err := s.apps.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return status == domain.ApplicationCancelled, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Application, error) {
	return s.apps.GetAll(ctx)
}

// ListForUser возвращает заявки пользователя; пустой список — это не
// ошибка.
func (s *Service) ListForUser(ctx context.Context, token string) ([]domain.Application, error) {
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.apps.GetByUserID(ctx, user.ID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.apps.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
