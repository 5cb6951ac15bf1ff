package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"officerent/internal/config"
	"officerent/internal/database"
	"officerent/internal/domain"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadRuntimeConfig()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Office{},
		&domain.Application{},
		&domain.Favorite{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM applications")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM offices")
	db.Exec("DELETE FROM users")

	if _, err := config.EnsureAdmin(db); err != nil {
		log.Fatal("Admin bootstrap failed:", err)
	}

	log.Println("Creating users...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("qwerty123"), bcrypt.DefaultCost)
	users := []domain.User{
		{LastName: "Иванов", FirstName: "Иван", Tel: "375-29-111-11-11", Age: 27, Email: "ivanov@example.com", PasswordHash: string(hash), Token: uuid.NewString()},
		{LastName: "Петрова", FirstName: "Анна", Tel: "375-33-222-22-22", Age: 34, Email: "petrova@example.com", PasswordHash: string(hash), Token: uuid.NewString()},
		{LastName: "Сидоров", FirstName: "Павел", Tel: "375-44-333-33-33", Age: 41, Email: "sidorov@example.com", PasswordHash: string(hash), Token: uuid.NewString()},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal("Seed user failed:", err)
		}
	}

	log.Println("Creating offices...")
	offices := []domain.Office{
		{Name: "Бизнес-центр Восток", Address: "пр. Независимости, 12", Options: "паркинг, переговорная", Description: "Светлый офис на 8 рабочих мест", Area: 54.5, Price: 1200, Active: true},
		{Name: "Коворкинг Центр", Address: "ул. Ленина, 3", Options: "кухня, ресепшен", Description: "Компактное помещение в центре", Area: 28, Price: 650, Active: true},
		{Name: "Офис Запад", Address: "ул. Притыцкого, 89", Options: "охрана", Description: "Просторный офис с отдельным входом", Area: 102.3, Price: 2100, Active: false},
	}
	for i := range offices {
		if err := db.Create(&offices[i]).Error; err != nil {
			log.Fatal("Seed office failed:", err)
		}
	}

	log.Println("Creating applications and favorites...")
	apps := []domain.Application{
		{UserID: users[0].ID, OfficeID: offices[0].ID, Status: domain.ApplicationPending},
		{UserID: users[0].ID, OfficeID: offices[1].ID, Status: domain.ApplicationApproved},
		{UserID: users[1].ID, OfficeID: offices[1].ID, Status: domain.ApplicationCancelled},
	}
	for i := range apps {
		if err := db.Create(&apps[i]).Error; err != nil {
			log.Fatal("Seed application failed:", err)
		}
	}

	favorites := []domain.Favorite{
		{UserID: users[0].ID, OfficeID: offices[1].ID},
		{UserID: users[1].ID, OfficeID: offices[0].ID},
		{UserID: users[2].ID, OfficeID: offices[2].ID},
	}
	for i := range favorites {
		if err := db.Create(&favorites[i]).Error; err != nil {
			log.Fatal("Seed favorite failed:", err)
		}
	}

	log.Println("Done.")
}
