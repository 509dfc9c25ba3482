package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string
	DatabaseDSN     string
	JWTSecret       string
	CORSOrigins     string
	SuperAdminEmail string // also the recipient of admin alert emails
	AdminPhone      string
	SenderEmail     string
	SenderName      string
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	UploadDir       string
	PublicBaseURL   string
	OpenAIAPIKey    string
	OpenAIModel     string
}

func Load() *Config {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=studio port=5432 sslmode=disable"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		SuperAdminEmail: getEnv("SUPER_ADMIN_EMAIL", ""),
		AdminPhone:      getEnv("ADMIN_PHONE", ""),
		SenderEmail:     getEnv("SENDER_EMAIL", "onboarding@resend.dev"),
		SenderName:      getEnv("SENDER_NAME", "Hogwarts Music Studio"),
		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters")
	}
	if cfg.SuperAdminEmail == "" {
		log.Fatal("[FATAL] SUPER_ADMIN_EMAIL is not set")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("[WARN] OPENAI_API_KEY not set, /api/chat will answer with the fallback message")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
