package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"officerent/internal/config"
	"officerent/internal/database"
	"officerent/internal/domain"
	"officerent/internal/middleware"
	"officerent/internal/modules/application"
	"officerent/internal/modules/auth"
	"officerent/internal/modules/favorite"
	"officerent/internal/modules/office"
	"officerent/internal/modules/report"
	"officerent/internal/pkg/logger"
	"officerent/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadRuntimeConfig()
	log := logger.New(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Office{},
		&domain.Application{},
		&domain.Favorite{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	// Админ создаётся лениво при первом старте; его токен — учётные
	// данные администратора на весь процесс.
	adminToken, err := config.EnsureAdmin(db)
	if err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	userRepo := repository.NewUserRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	authService := auth.NewService(userRepo, favoriteRepo, adminToken)
	authHandler := auth.NewHandler(authService)

	officeService := office.NewService(officeRepo, cfg.PhotosDir)
	officeHandler := office.NewHandler(officeService)

	appService := application.NewService(appRepo, userRepo, adminToken)
	appHandler := application.NewHandler(appService)

	favoriteService := favorite.NewService(favoriteRepo, userRepo, officeRepo, adminToken)
	favoriteHandler := favorite.NewHandler(favoriteService)

	reportService := report.NewService(userRepo, officeRepo, appRepo, cfg.ReportFontDir)
	reportHandler := report.NewHandler(reportService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log), middleware.CORS())
	r.Static("/photos", cfg.PhotosDir)

	public := r.Group("/")
	admin := r.Group("/")
	admin.Use(middleware.AdminToken(adminToken))

	authHandler.RegisterRoutes(public, admin)
	officeHandler.RegisterRoutes(public, admin)
	appHandler.RegisterRoutes(public, admin)
	favoriteHandler.RegisterRoutes(public)
	reportHandler.RegisterRoutes(admin)

	log.Info().Str("port", cfg.Port).Msg("starting office rental API")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
