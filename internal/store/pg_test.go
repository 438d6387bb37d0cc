//go:build integration

package store

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

var pgDB *gorm.DB

// TestMain runs the store suite against TEST_DATABASE_DSN, or a throwaway postgres container when unset
func TestMain(m *testing.M) {
	os.Exit(runWithPostgres(m))
}

func runWithPostgres(m *testing.M) int {
	ctx := context.Background()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		container, err := postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("account_sync_test"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			log.Printf("failed to start postgres container: %v", err)
			return 1
		}
		defer func() {
			if err := container.Terminate(ctx); err != nil {
				log.Printf("failed to terminate postgres container: %v", err)
			}
		}()

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Printf("failed to get connection string: %v", err)
			return 1
		}
	}

	db, err := Open(OpenOptions{Driver: DriverPostgres, DSN: dsn, AutoMigrate: true})
	if err != nil {
		log.Printf("failed to open test database: %v", err)
		return 1
	}
	pgDB = db

	return m.Run()
}

// initPGTestDB isolates each test in a transaction that is rolled back on cleanup
func initPGTestDB(t *testing.T) Store {
	tx := pgDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })

	return NewStore(tx)
}

func TestPostgreSQLStore(t *testing.T) {
	require.NotNil(t, pgDB, "test database not initialized")
	RunStoreTests(t, initPGTestDB, func(*testing.T) {})
}
