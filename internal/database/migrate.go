package database

import (
	"gorm.io/gorm"

	"github.com/pantryplate/backend/internal/model"
)

// Migrate brings the schema up to date. AutoMigrate covers both
// dialects; sqlite maps the jsonb columns to JSON text.
func Migrate(db *gorm.DB) error {
	log.WithField("dialect", db.Dialector.Name()).Info("running migrations")
	return db.AutoMigrate(&model.Recipe{})
}
