// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	"anoa.com/coursecms/internal/bootstrap"
	"anoa.com/coursecms/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite database that lives as long as t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Options{DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, bootstrap.Migrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
