// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/rohits-web03/clubhouse/internal/repositories"
)

// NewDB opens a migrated SQLite database in a fresh temp file.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clubhouse-test.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := repositories.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
