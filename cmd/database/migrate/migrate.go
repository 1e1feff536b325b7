package migration

import (
	"fmt"
	"wine-diary/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrate user table: %w", err)
	}
	if err := db.AutoMigrate(&entities.Tasting{}); err != nil {
		return fmt.Errorf("migrate tasting table: %w", err)
	}

	// created_at comes from the shared Timestamp, so this index has no tag.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_tastings_user_created ON tastings (user_id, created_at DESC);`).Error; err != nil {
		return fmt.Errorf("create tasting list index: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
