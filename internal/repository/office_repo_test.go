package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"officerent/internal/domain"
)

func seedOffice(t *testing.T, repo *OfficeRepository, o domain.Office) *domain.Office {
	t.Helper()
	if err := repo.Create(context.Background(), &o); err != nil {
		t.Fatalf("seed office: %v", err)
	}
	return &o
}

func TestOfficeRepository_Search_Ranges(t *testing.T) {
	db := newTestDB(t)
	repo := NewOfficeRepository(db)
	ctx := context.Background()

	seedOffice(t, repo, domain.Office{Name: "Офис Центр", Area: 40, Price: 100000})
	seedOffice(t, repo, domain.Office{Name: "Офис Юг", Area: 80, Price: 250000})
	seedOffice(t, repo, domain.Office{Name: "Офис Север", Area: 120, Price: 500000})

	found, err := repo.Search(ctx, OfficeFilters{
		MinArea: 50, MaxArea: 130, MinPrice: 200000, MaxPrice: 300000,
	})
	assert.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Офис Юг", found[0].Name)
	}

	// Границы диапазона включаются.
	found, err = repo.Search(ctx, OfficeFilters{
		MinArea: 40, MaxArea: 120, MinPrice: 100000, MaxPrice: 500000,
	})
	assert.NoError(t, err)
	assert.Len(t, found, 3)

	found, err = repo.Search(ctx, OfficeFilters{
		MinArea: 200, MaxArea: 300, MinPrice: 0, MaxPrice: 1,
	})
	assert.NoError(t, err)
	assert.Empty(t, found)
}

func TestOfficeRepository_SearchByName_Normalization(t *testing.T) {
	db := newTestDB(t)
	repo := NewOfficeRepository(db)
	ctx := context.Background()

	seedOffice(t, repo, domain.Office{Name: "Business-Center Alpha", Area: 40, Price: 100000})
	seedOffice(t, repo, domain.Office{Name: "Loft 42", Area: 80, Price: 250000})

	found, err := repo.SearchByName(ctx, "business center")
	assert.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Business-Center Alpha", found[0].Name)
	}

	found, err = repo.SearchByName(ctx, "LOFT-42")
	assert.NoError(t, err)
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Loft 42", found[0].Name)
	}

	found, err = repo.SearchByName(ctx, "nothing")
	assert.NoError(t, err)
	assert.Empty(t, found)
}

// Фотографии живут одной text-колонкой, список восстанавливается при чтении.
func TestOfficeRepository_PhotosRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewOfficeRepository(db)
	ctx := context.Background()

	o := seedOffice(t, repo, domain.Office{
		Name: "Офис", Area: 40, Price: 100000,
		Photos: []string{"photos/1/a.jpeg", "photos/1/b.png"},
	})

	got, err := repo.GetByID(ctx, o.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"photos/1/a.jpeg", "photos/1/b.png"}, got.Photos)
}

func TestOfficeRepository_Delete_Cascades(t *testing.T) {
	db := newTestDB(t)
	offices := NewOfficeRepository(db)
	apps := NewApplicationRepository(db)
	favs := NewFavoriteRepository(db)
	ctx := context.Background()

	o := seedOffice(t, offices, domain.Office{Name: "Офис", Area: 40, Price: 100000})
	keep := seedOffice(t, offices, domain.Office{Name: "Другой", Area: 50, Price: 150000})

	assert.NoError(t, apps.Create(ctx, &domain.Application{UserID: 1, OfficeID: o.ID}))
	assert.NoError(t, apps.Create(ctx, &domain.Application{UserID: 1, OfficeID: keep.ID}))
	assert.NoError(t, favs.Add(ctx, 1, o.ID))

	assert.NoError(t, offices.Delete(ctx, o.ID))

	_, err := offices.GetByID(ctx, o.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	remaining, err := apps.GetByUserID(ctx, 1)
	assert.NoError(t, err)
	if assert.Len(t, remaining, 1) {
		assert.Equal(t, keep.ID, remaining[0].OfficeID)
	}

	ids, err := favs.OfficeIDs(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavoriteRepository_DuplicateAndRemove(t *testing.T) {
	db := newTestDB(t)
	favs := NewFavoriteRepository(db)
	ctx := context.Background()

	assert.NoError(t, favs.Add(ctx, 1, 2))

	err := favs.Add(ctx, 1, 2)
	assert.Error(t, err)
	assert.True(t, IsDuplicateKey(err))

	ok, err := favs.Exists(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, favs.Remove(ctx, 1, 2))
	assert.ErrorIs(t, favs.Remove(ctx, 1, 2), gorm.ErrRecordNotFound)
}
