package repository

import (
	"path/filepath"
	"testing"

	"wageflow/internal/config"
	"wageflow/internal/database"
	"wageflow/internal/logging"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Config{
		DatabaseDriver: database.DriverSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "test.db"),
	}, logging.Discard())
	require.NoError(t, err)

	t.Cleanup(func() { database.Close(db) })
	return db
}

func newRepos(t *testing.T) (*GormWorkerRepository, *GormAttendanceRepository) {
	t.Helper()

	db := openTestDB(t)
	workers, err := NewGormWorkerRepository(db, logging.Discard())
	require.NoError(t, err)
	attendance, err := NewGormAttendanceRepository(db, logging.Discard())
	require.NoError(t, err)

	return workers, attendance
}

func strPtr(s string) *string { return &s }
