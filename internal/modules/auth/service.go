package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"officerent/internal/domain"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Service contains all business logic for identity and profiles
type Service struct {
	users      UserRepositoryInterface
	favorites  FavoriteReader
	adminToken string
}

func NewService(users UserRepositoryInterface, favorites FavoriteReader, adminToken string) *Service {
	return &Service{
		users:      users,
		favorites:  favorites,
		adminToken: adminToken,
	}
}

// Register создаёт обычного пользователя со свежим uuid-токеном.
// Почта проверяется раньше телефона: при двойном дубликате клиент получает
// сообщение про почту.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	emailTaken, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, ErrDuplicateEmail
	}

	telTaken, err := s.users.ExistsByTel(ctx, req.Tel)
	if err != nil {
		return nil, err
	}
	if telTaken {
		return nil, ErrDuplicateTel
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		Tel:          req.Tel,
		Age:          req.Age,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Admin:        false,
		Blocked:      false,
		Token:        uuid.NewString(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.Offices = []int64{}
	return user, nil
}

// Login возвращает токен и роль. Роль Admin выдаётся единственному
// пользователю, чей токен совпадает с токеном администратора процесса.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Blocked {
		return nil, ErrBlocked
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrBadPassword
	}

	role := RoleUser
	if user.Token == s.adminToken {
		role = RoleAdmin
	}
	return &LoginResponse{Token: user.Token, Role: role}, nil
}

func (s *Service) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.withFavorites(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.withFavorites(ctx, user)
}

func (s *Service) UpdateByToken(ctx context.Context, token string, req UpdateUserRequest) error {
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.applyUpdate(ctx, user, req)
}

func (s *Service) UpdateByID(ctx context.Context, id int64, req UpdateUserRequest) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.applyUpdate(ctx, user, req)
}

func (s *Service) DeleteByToken(ctx context.Context, token string) error {
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.users.Delete(ctx, user.ID)
}

func (s *Service) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.users.Delete(ctx, id)
}

func (s *Service) ListNonAdmin(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListNonAdmin(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if _, err := s.withFavorites(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *Service) SearchByPhone(ctx context.Context, phone string) ([]domain.User, error) {
	users, err := s.users.SearchByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if _, err := s.withFavorites(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *Service) applyUpdate(ctx context.Context, user *domain.User, req UpdateUserRequest) error {
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.Tel != nil {
		user.Tel = *req.Tel
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	if req.Blocked != nil {
		user.Blocked = *req.Blocked
	}
	return s.users.Update(ctx, user)
}

func (s *Service) withFavorites(ctx context.Context, user *domain.User) (*domain.User, error) {
	ids, err := s.favorites.OfficeIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Offices = ids
	return user, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
