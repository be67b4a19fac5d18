package cli

import (
	"fmt"
	"io"

	"wageflow/internal/config"
	"wageflow/internal/database"
	"wageflow/internal/logging"
	"wageflow/internal/repository"
	"wageflow/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// application держит все зависимости, общие для команд
type application struct {
	cfg        *config.Config
	logger     *logrus.Logger
	db         *gorm.DB
	workers    *service.WorkerService
	attendance *service.AttendanceService
	reports    *service.ReportService
}

func bootstrap(opts *RootOptions, logOutput io.Writer) (*application, error) {
	cfg := opts.loadConfig()

	logger := logging.New(logOutput)
	cfg.ApplyLogLevel(logger)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	workerRepo, err := repository.NewGormWorkerRepository(db, logger)
	if err != nil {
		database.Close(db)
		return nil, fmt.Errorf("create worker repository: %w", err)
	}

	attendanceRepo, err := repository.NewGormAttendanceRepository(db, logger)
	if err != nil {
		database.Close(db)
		return nil, fmt.Errorf("create attendance repository: %w", err)
	}

	return &application{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		workers:    service.NewWorkerService(workerRepo, logger),
		attendance: service.NewAttendanceService(attendanceRepo, workerRepo, logger),
		reports:    service.NewReportService(workerRepo, attendanceRepo, logger),
	}, nil
}

func (a *application) Close() {
	if err := database.Close(a.db); err != nil {
		a.logger.WithError(err).Error("Error closing database")
	}
}
