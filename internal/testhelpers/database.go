package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pantryplate/backend/internal/model"
)

// NewTestDB opens a private in-memory sqlite database with the recipe
// schema migrated. Each call gets its own database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory DB.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Recipe{}))
	return db
}

// CreateRecipe persists a recipe fixture and returns it.
func CreateRecipe(t *testing.T, db *gorm.DB, recipe model.Recipe) model.Recipe {
	t.Helper()
	require.NoError(t, db.Create(&recipe).Error)
	return recipe
}
