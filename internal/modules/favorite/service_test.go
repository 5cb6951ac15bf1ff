package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"officerent/internal/domain"
)

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID, officeID int64) error {
	args := m.Called(ctx, userID, officeID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, officeID int64) error {
	args := m.Called(ctx, userID, officeID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) OfficeIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockUserResolver struct {
	mock.Mock
}

func (m *MockUserResolver) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockOfficeChecker struct {
	mock.Mock
}

func (m *MockOfficeChecker) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

const testAdminToken = "admin-token"

func newTestService() (*Service, *MockFavoriteRepository, *MockUserResolver, *MockOfficeChecker) {
	favs := new(MockFavoriteRepository)
	users := new(MockUserResolver)
	offices := new(MockOfficeChecker)
	return NewService(favs, users, offices, testAdminToken), favs, users, offices
}

func TestService_Add_Success(t *testing.T) {
	service, favs, users, offices := newTestService()

	users.On("GetByToken", mock.Anything, "user-token").
		Return(&domain.User{ID: 7, Token: "user-token"}, nil)
	offices.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	favs.On("Add", mock.Anything, int64(7), int64(3)).Return(nil)

	err := service.Add(context.Background(), "user-token", 3)

	assert.NoError(t, err)
	favs.AssertExpectations(t)
}

// Администратору избранное недоступно, репозитории даже не трогаются.
func TestService_Add_AdminForbidden(t *testing.T) {
	service, favs, users, _ := newTestService()

	err := service.Add(context.Background(), testAdminToken, 3)

	assert.ErrorIs(t, err, ErrAdminForbidden)
	users.AssertNotCalled(t, "GetByToken", mock.Anything, mock.Anything)
	favs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Add_OfficeNotFound(t *testing.T) {
	service, favs, users, offices := newTestService()

	users.On("GetByToken", mock.Anything, "user-token").
		Return(&domain.User{ID: 7, Token: "user-token"}, nil)
	offices.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	err := service.Add(context.Background(), "user-token", 99)

	assert.ErrorIs(t, err, ErrOfficeNotFound)
	favs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

// Повторное добавление того же офиса — единственная запись и сообщение
// "уже в понравившихся" через ошибку уникального индекса.
func TestService_Add_AlreadyAdded(t *testing.T) {
	service, favs, users, offices := newTestService()

	users.On("GetByToken", mock.Anything, "user-token").
		Return(&domain.User{ID: 7, Token: "user-token"}, nil)
	offices.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	favs.On("Add", mock.Anything, int64(7), int64(3)).Return(gorm.ErrDuplicatedKey)

	err := service.Add(context.Background(), "user-token", 3)

	assert.ErrorIs(t, err, ErrAlreadyAdded)
}

func TestService_Remove_NotFavorite(t *testing.T) {
	service, favs, users, _ := newTestService()

	users.On("GetByToken", mock.Anything, "user-token").
		Return(&domain.User{ID: 7, Token: "user-token"}, nil)
	favs.On("Remove", mock.Anything, int64(7), int64(3)).Return(gorm.ErrRecordNotFound)

	err := service.Remove(context.Background(), "user-token", 3)

	assert.ErrorIs(t, err, ErrNotFavorite)
}

func TestService_Remove_UserNotFound(t *testing.T) {
	service, _, users, _ := newTestService()

	users.On("GetByToken", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	err := service.Remove(context.Background(), "missing", 3)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_List_ReturnsIDs(t *testing.T) {
	service, favs, users, _ := newTestService()

	users.On("GetByToken", mock.Anything, "user-token").
		Return(&domain.User{ID: 7, Token: "user-token"}, nil)
	favs.On("OfficeIDs", mock.Anything, int64(7)).Return([]int64{3, 5}, nil)

	ids, err := service.List(context.Background(), "user-token")

	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, ids)
}
