package database

import (
	"productivity-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/go-pkgz/lgr"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the SQLite database at path and runs migrations. The file is
// created on first start. Using glebarez/sqlite which is a pure Go
// implementation (no CGO required).
func InitDB(path string, debug bool) error {
	logMode := logger.Warn
	if debug {
		logMode = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return err
	}

	// Auto-migrate the schema (creates tables if they don't exist)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Project{},
		&models.Note{},
	); err != nil {
		return err
	}

	DB = db
	lgr.Printf("[INFO] database connected and migrated (%s)", path)
	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}
