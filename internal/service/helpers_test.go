package service

import (
	"path/filepath"
	"testing"
	"time"

	"wageflow/internal/config"
	"wageflow/internal/database"
	"wageflow/internal/logging"
	"wageflow/internal/repository"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	workers    *WorkerService
	attendance *AttendanceService
	reports    *ReportService
	clock      *fakeClock
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	logger := logging.Discard()
	db, err := database.Open(&config.Config{
		DatabaseDriver: database.DriverSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "test.db"),
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	workerRepo, err := repository.NewGormWorkerRepository(db, logger)
	require.NoError(t, err)
	attendanceRepo, err := repository.NewGormAttendanceRepository(db, logger)
	require.NoError(t, err)

	clock := &fakeClock{now: now}
	return &fixture{
		workers:    NewWorkerService(workerRepo, logger).WithClock(clock.Now),
		attendance: NewAttendanceService(attendanceRepo, workerRepo, logger).WithClock(clock.Now),
		reports:    NewReportService(workerRepo, attendanceRepo, logger).WithClock(clock.Now),
		clock:      clock,
	}
}

func strPtr(s string) *string { return &s }
