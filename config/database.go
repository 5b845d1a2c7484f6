package config

import (
	"os"

	"github.com/sudha-1290/Quiz-Master-V1/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Database *gorm.DB

// Connect opens the database and runs migrations. DB_URL selects postgres;
// without it a local sqlite file is used so the app runs with no setup.
func Connect() error {
	var err error
	dbURL := os.Getenv("DB_URL")
	if dbURL != "" {
		Database, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "quizmaster.db"
		}
		Database, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	return Migrate(Database)
}

// Migrate creates or updates the schema for every model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Quiz{},
		&models.Question{},
		&models.Score{},
		&models.Achievement{},
		&models.UserStatistics{},
		&models.UserProgress{},
		&models.StudyMaterial{},
	)
}
