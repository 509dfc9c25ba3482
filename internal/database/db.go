package database

import (
	"fmt"
	"log"

	"studio-backend/internal/config"
	"studio-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connected, migration complete.")
}

// InitTest opens an in-memory sqlite database and points the package-level
// DB at it. Each call gets a fresh schema. The database is named so every
// pooled connection sees the same memory instance.
func InitTest() *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("sqlite open failed: %v", err)
	}
	if err := migrate(db); err != nil {
		log.Fatalf("sqlite AutoMigrate failed: %v", err)
	}
	DB = db
	return db
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.OTPCode{},
		&models.Service{},
		&models.Project{},
		&models.Booking{},
		&models.Application{},
		&models.Setting{},
	)
}
