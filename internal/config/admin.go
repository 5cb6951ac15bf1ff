package config

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"officerent/internal/domain"
)

const (
	AdminEmail    = "admin@example.com"
	adminPassword = "Pppp2005"
)

// EnsureAdmin создаёт администратора при первом запуске и возвращает его
// токен. Токен отдаётся явно и дальше передаётся в middleware — никакого
// глобального состояния процесса.
func EnsureAdmin(db *gorm.DB) (string, error) {
	var existing domain.User
	err := db.Where("email = ?", AdminEmail).First(&existing).Error
	if err == nil {
		return existing.Token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	admin := domain.User{
		LastName:     "Admin",
		FirstName:    "User",
		Tel:          "000-000-0000",
		Age:          30,
		Email:        AdminEmail,
		PasswordHash: string(hash),
		Admin:        true,
		Blocked:      false,
		Token:        uuid.NewString(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return "", err
	}
	return admin.Token, nil
}
