package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"officerent/internal/domain"
)

func seedUser(t *testing.T, repo *UserRepository, u domain.User) *domain.User {
	t.Helper()
	if err := repo.Create(context.Background(), &u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &u
}

func TestUserRepository_SearchByPhone_Normalization(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, repo, domain.User{
		LastName: "Иванов", FirstName: "Иван",
		Tel: "8-705-123-45-67", Email: "ivanov@example.com", Token: "t-1",
	})
	seedUser(t, repo, domain.User{
		LastName: "Петров", FirstName: "Пётр",
		Tel: "8 701 999 00 11", Email: "petrov@example.com", Token: "t-2",
	})
	seedUser(t, repo, domain.User{
		LastName: "Админ", FirstName: "Админ",
		Tel: "87051234567", Email: "admin@example.com", Token: "t-admin", Admin: true,
	})

	// Дефисы и пробелы не мешают ни в запросе, ни в хранимом номере.
	found, err := repo.SearchByPhone(ctx, "705-123")
	assert.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Иванов", found[0].LastName)
	}

	// Администратор в поиск не попадает, хотя номер совпадает.
	found, err = repo.SearchByPhone(ctx, "8705")
	assert.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.SearchByPhone(ctx, "999 00")
	assert.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Петров", found[0].LastName)
	}
}

func TestUserRepository_ListNonAdmin_Ordered(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	seedUser(t, repo, domain.User{LastName: "Б", Tel: "1", Email: "b@example.com", Token: "t-b"})
	seedUser(t, repo, domain.User{LastName: "А", Tel: "2", Email: "a@example.com", Token: "t-a"})
	seedUser(t, repo, domain.User{LastName: "Админ", Tel: "3", Email: "adm@example.com", Token: "t-adm", Admin: true})

	users, err := repo.ListNonAdmin(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, users, 2) {
		assert.Equal(t, "Б", users[0].LastName)
		assert.Equal(t, "А", users[1].LastName)
	}
}

// Удаление пользователя забирает с собой его заявки и избранное целиком.
func TestUserRepository_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	apps := NewApplicationRepository(db)
	favs := NewFavoriteRepository(db)
	ctx := context.Background()

	u := seedUser(t, users, domain.User{LastName: "Иванов", Tel: "1", Email: "i@example.com", Token: "t-1"})
	other := seedUser(t, users, domain.User{LastName: "Петров", Tel: "2", Email: "p@example.com", Token: "t-2"})

	assert.NoError(t, apps.Create(ctx, &domain.Application{UserID: u.ID, OfficeID: 1}))
	assert.NoError(t, apps.Create(ctx, &domain.Application{UserID: other.ID, OfficeID: 1}))
	assert.NoError(t, favs.Add(ctx, u.ID, 1))
	assert.NoError(t, favs.Add(ctx, other.ID, 1))

	assert.NoError(t, users.Delete(ctx, u.ID))

	_, err := users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	mine, err := apps.GetByUserID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Empty(t, mine)

	ids, err := favs.OfficeIDs(ctx, u.ID)
	assert.NoError(t, err)
	assert.Empty(t, ids)

	// Чужие записи не задеты.
	theirs, err := apps.GetByUserID(ctx, other.ID)
	assert.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestUserRepository_ExistsByEmail_Trimmed(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, repo, domain.User{Tel: "1", Email: "ivanov@example.com", Token: "t-1"})

	ok, err := repo.ExistsByEmail(ctx, "  ivanov@example.com  ")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.False(t, ok)
}
