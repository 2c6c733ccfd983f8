package database

import (
	"log"
	"strings"
	"time"

	"github.com/anjiri1684/course_enrollment/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDB(dsn, logLevel string) {
	if dsn == "" {
		log.Fatal("🔥 DATABASE_URL is not set")
	}

	db, err := Open(postgres.Open(dsn), logLevel)
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("🔥 Failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	DB = db
	log.Println("✅ Database connected successfully")
}

// Open wraps gorm.Open with the settings every connection in this service
// uses. Constraint errors are translated so services can classify them.
func Open(dialector gorm.Dialector, logLevel string) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(parseLogLevel(logLevel)),
	})
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Student{},
		&models.Course{},
		&models.Enrollment{},
		&models.Grade{},
		&models.Transcript{},
	)
}

func MustMigrate() {
	if err := Migrate(DB); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migration successful")
}
