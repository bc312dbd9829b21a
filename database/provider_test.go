package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoursport/admin-api/config"
)

type testRecord struct {
	ID   uint
	Name string
}

func sqliteConfig(autoMigrate bool) *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:      "sqlite",
			DSN:         ":memory:",
			AutoMigrate: autoMigrate,
		},
	}
}

func TestProvideDatabase(t *testing.T) {
	t.Run("opens sqlite database", func(t *testing.T) {
		db, err := ProvideDatabase(sqliteConfig(false), nil)
		require.NoError(t, err)
		require.NotNil(t, db)
	})

	t.Run("auto-migrates registered models", func(t *testing.T) {
		db, err := ProvideDatabase(sqliteConfig(true), WithModels(&testRecord{}))
		require.NoError(t, err)

		assert.True(t, db.Migrator().HasTable(&testRecord{}))
	})

	t.Run("skips migration when disabled", func(t *testing.T) {
		db, err := ProvideDatabase(sqliteConfig(false), WithModels(&testRecord{}))
		require.NoError(t, err)

		assert.False(t, db.Migrator().HasTable(&testRecord{}))
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		cfg := sqliteConfig(false)
		cfg.Database.Driver = "oracle"

		db, err := ProvideDatabase(cfg, nil)
		assert.Nil(t, db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})
}
