// Package dbtest opens throwaway SQLite databases with the production schema
// for package tests.
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/anjiri1684/course_enrollment/database"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var seq atomic.Int64

func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:enrollment_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq.Add(1))
	db, err := database.Open(sqlite.Open(dsn), "silent")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// UseGlobal points database.DB at a fresh test database for the duration of t.
func UseGlobal(t testing.TB) *gorm.DB {
	t.Helper()

	db := Open(t)
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}
