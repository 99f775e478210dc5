package database

import (
	"fmt"
	"log"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/config"
	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	// TranslateError lets callers detect unique-index violations as
	// gorm.ErrDuplicatedKey; the attempt and credit paths depend on it.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Attempt{},
		&models.CreditAccount{},
		&models.CreditTransaction{},
		&models.Roadmap{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
