package config

import (
	"os"
	"strings"
)

const (
	defaultPort          = "1480"
	defaultDatabaseURL   = "officerent.db"
	defaultPhotosDir     = "photos"
	defaultReportFontDir = "."
)

type RuntimeConfig struct {
	AppEnv        string
	DatabaseURL   string
	Port          string
	PhotosDir     string
	ReportFontDir string
}

func LoadRuntimeConfig() *RuntimeConfig {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}

	return &RuntimeConfig{
		AppEnv:        strings.ToLower(appEnv),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		Port:          getEnv("PORT", defaultPort),
		PhotosDir:     getEnv("PHOTOS_DIR", defaultPhotosDir),
		ReportFontDir: getEnv("REPORT_FONT_DIR", defaultReportFontDir),
	}
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
