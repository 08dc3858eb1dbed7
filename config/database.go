package config

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"zyph-contact-api/models"
)

// InitDB opens the database from the configured DSN and migrates the
// contacts table. The returned handle is passed explicitly to every
// component that needs it.
func InitDB(cfg Config) (*gorm.DB, error) {
	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Info
	if cfg.Environment == "production" && !cfg.DebugSQL {
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), gormConfig)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Contact{}); err != nil {
		return nil, err
	}

	log.Println("Database connected successfully")
	return db, nil
}
