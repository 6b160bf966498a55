// Package databasetest provides migrated in-memory databases for tests.
package databasetest

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"starwars-api/internal/database"
)

// New returns a private in-memory sqlite database with every migration
// applied. The connection is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, driver, err := database.NewConnection(context.Background(), "sqlite://:memory:", log)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.RunMigrations(db, driver, log); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
