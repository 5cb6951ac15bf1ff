package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"officerent/internal/domain"
)

func TestApplicationRepository_DuplicatePair(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	first := &domain.Application{UserID: 1, OfficeID: 2, Status: domain.ApplicationPending}
	assert.NoError(t, repo.Create(ctx, first))

	// Вторая заявка на ту же пару отбивается уникальным индексом,
	// без предварительного SELECT.
	second := &domain.Application{UserID: 1, OfficeID: 2, Status: domain.ApplicationPending}
	err := repo.Create(ctx, second)
	assert.Error(t, err)
	assert.True(t, IsDuplicateKey(err))

	// Другая пара проходит.
	third := &domain.Application{UserID: 1, OfficeID: 3, Status: domain.ApplicationPending}
	assert.NoError(t, repo.Create(ctx, third))
}

func TestApplicationRepository_GetByUserID_EmptyIsNotNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)

	apps, err := repo.GetByUserID(context.Background(), 42)

	assert.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Len(t, apps, 0)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := &domain.Application{UserID: 1, OfficeID: 2, Status: domain.ApplicationPending}
	assert.NoError(t, repo.Create(ctx, app))

	assert.NoError(t, repo.UpdateStatus(ctx, app.ID, domain.ApplicationApproved))

	got, err := repo.GetByID(ctx, app.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationApproved, got.Status)

	err = repo.UpdateStatus(ctx, 9999, domain.ApplicationCancelled)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApplicationRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := &domain.Application{UserID: 1, OfficeID: 2, Status: domain.ApplicationPending}
	assert.NoError(t, repo.Create(ctx, app))

	assert.NoError(t, repo.Delete(ctx, app.ID))
	assert.ErrorIs(t, repo.Delete(ctx, app.ID), gorm.ErrRecordNotFound)
}

func TestIsDuplicateKey_NilAndOther(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(gorm.ErrRecordNotFound))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
}
