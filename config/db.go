package config

import (
	"log"
	"os"
	"time"

	"boardinghouse-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the MySQL connection and applies migrations in
// parent->child order. The returned handle is injected into the
// repositories; nothing holds it as package state.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PropertyRule{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
