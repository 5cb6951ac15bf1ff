package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"officerent/internal/repository"
)

type Service struct {
	favorites  FavoriteRepositoryInterface
	users      UserResolver
	offices    OfficeChecker
	adminToken string
}

func NewService(
	favorites FavoriteRepositoryInterface,
	users UserResolver,
	offices OfficeChecker,
	adminToken string,
) *Service {
	return &Service{
		favorites:  favorites,
		users:      users,
		offices:    offices,
		adminToken: adminToken,
	}
}

// Add добавляет офис в избранное. Повторное добавление отбивается
// уникальным индексом, а не предварительным чтением списка, так что
// параллельные запросы не теряют друг друга.
func (s *Service) Add(ctx context.Context, token string, officeID int64) error {
	if token == s.adminToken {
		return ErrAdminForbidden
	}

	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	exists, err := s.offices.Exists(ctx, officeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrOfficeNotFound
	}

	if err := s.favorites.Add(ctx, user.ID, officeID); err != nil {
		if repository.IsDuplicateKey(err) {
			return ErrAlreadyAdded
		}
		return err
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, token string, officeID int64) error {
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.favorites.Remove(ctx, user.ID, officeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFavorite
		}
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, token string) ([]int64, error) {
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.favorites.OfficeIDs(ctx, user.ID)
}
