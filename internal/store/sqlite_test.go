package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initSQLiteTestDB opens a private in-memory sqlite database for each test
func initSQLiteTestDB(t *testing.T) Store {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := Open(OpenOptions{Driver: DriverSQLite, DSN: dsn})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewStore(db)
}

func cleanupSQLiteTestDB(t *testing.T) {
	// The in-memory database disappears with its last connection
}

// TestSQLiteStore runs all store tests against sqlite
func TestSQLiteStore(t *testing.T) {
	RunStoreTests(t, initSQLiteTestDB, cleanupSQLiteTestDB)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := Open(OpenOptions{Driver: "mysql", DSN: "x"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	maxOpen, maxIdle, lifetime, idle := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, maxOpen)
	assert.Equal(t, 5, maxIdle)
	assert.Equal(t, 5*time.Minute, lifetime)
	assert.Equal(t, 10*time.Minute, idle)

	maxOpen, maxIdle, _, _ = NormalizeConnectionPoolSettings(1, 5, time.Minute, time.Minute)
	assert.Equal(t, 1, maxOpen)
	assert.Equal(t, 1, maxIdle)
}
