// Package testdb opens throwaway SQLite databases for tests.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"privstore/internal/infrastructure/database"
	"privstore/internal/infrastructure/persistence/models"
	"privstore/internal/shared/config"
)

// Open returns an in-memory SQLite database with every model migrated. The
// database is closed when the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Database: ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
