package database_test

import (
	"path/filepath"
	"testing"

	"github.com/Kyz7/gallery/internal/config"
	"github.com/Kyz7/gallery/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLite(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: "sqlite",
		SQLitePath:  filepath.Join(t.TempDir(), "gallery.db"),
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	assert.True(t, db.Migrator().HasTable("kv_slots"))
}

func TestConnectRejectsNonSQLDriver(t *testing.T) {
	_, err := database.Connect(&config.Config{StoreDriver: "redis"})
	assert.Error(t, err)
}
