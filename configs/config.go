package config

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func Config(key string) string {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return fallback
}

type Settings struct {
	Port               string
	DatabaseURL        string
	DBLogLevel         string
	CORSOrigins        string
	TimeZone           string
	GradeAuditSchedule string
	CloudinaryURL      string
	BrevoAPIKey        string
	EmailSender        string
	EmailSenderName    string
}

func Load() Settings {
	return Settings{
		Port:               ConfigOr("PORT", "8080"),
		DatabaseURL:        Config("DATABASE_URL"),
		DBLogLevel:         ConfigOr("DB_LOG_LEVEL", "warn"),
		CORSOrigins:        ConfigOr("CORS_ORIGINS", "*"),
		TimeZone:           ConfigOr("TIME_ZONE", "UTC"),
		GradeAuditSchedule: ConfigOr("GRADE_AUDIT_SCHEDULE", "*/30 * * * *"),
		CloudinaryURL:      Config("CLOUDINARY_URL"),
		BrevoAPIKey:        Config("BREVO_API_KEY"),
		EmailSender:        Config("EMAIL_SENDER"),
		EmailSenderName:    ConfigOr("EMAIL_SENDER_NAME", "Course Enrollment"),
	}
}
