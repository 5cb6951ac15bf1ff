package repository

import (
	"testing"

	"gorm.io/gorm"

	"officerent/internal/database"
	"officerent/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Office{},
		&domain.Application{},
		&domain.Favorite{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
