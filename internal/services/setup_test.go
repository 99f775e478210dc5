package services

import (
	"fmt"
	"testing"

	"github.com/Abhinav-Vishwakarma/CampusVerse-sub000/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. cache=shared
// keeps the database alive across the pool's connections, and the uuid in
// the DSN keeps tests from seeing each other's data. TranslateError is on,
// matching production, so unique-index violations surface as
// gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Attempt{},
		&models.CreditAccount{},
		&models.CreditTransaction{},
		&models.Roadmap{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, role, branch, section string) *models.User {
	t.Helper()

	user := models.User{
		Name:         "Test " + role,
		Email:        uuid.NewString() + "@campus.edu",
		PasswordHash: "x",
		Role:         role,
		Branch:       branch,
		Section:      section,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}
