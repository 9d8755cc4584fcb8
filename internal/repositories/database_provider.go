package repositories

import (
	"batlog/internal/models"
	"batlog/internal/providers"
	"batlog/internal/structures"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabaseProvider opens the datastore connection. A missing DSN is fatal:
// the service cannot run without its backing tables.
func NewDatabaseProvider(conf *structures.Config, log providers.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(conf.Database.Dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to datastore: %w", err)
	}

	if conf.Database.AutoMigrate {
		if err := db.AutoMigrate(&models.Profile{}, &models.AtBat{}); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		log.Infof(providers.TypeDb, "Schema migration applied")
	}

	log.Infof(providers.TypeDb, "Datastore connected")
	return db, nil
}
