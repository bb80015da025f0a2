package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds everything read from the environment at process start.
// It is built once in main and passed by reference; no package keeps
// its own copy of connection or secret material.
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	MailDSN        string
	MailSender     string
	Port           string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MailDSN:     os.Getenv("MAIL_DSN"),
		MailSender:  os.Getenv("MAILER_ENVELOPE_SENDER"),
		Port:        os.Getenv("PORT"),
	}

	if cfg.DatabaseURL == "" {
		host := getEnvDefault("DB_HOST", "localhost")
		port := getEnvDefault("DB_PORT", "5432")
		user := getEnvDefault("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		name := getEnvDefault("DB_NAME", "score_liklo")
		sslmode := getEnvDefault("DB_SSLMODE", "disable")
		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, name, sslmode)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if cfg.Port == "" {
		cfg.Port = "4000"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		cfg.AllowedOrigins = []string{
			"http://localhost:8080",
			"http://localhost:3000",
			"http://localhost:3001",
		}
	} else {
		for _, origin := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(origin))
		}
	}

	return cfg, nil
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// ConnectDatabase opens the GORM connection described by the config.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established")
	return db, nil
}
