package service

import (
	"context"
	"fmt"
	"time"

	"wageflow/internal/models"
	"wageflow/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReportService struct {
	workerRepo     repository.WorkerRepository
	attendanceRepo repository.AttendanceRepository
	logger         *logrus.Logger
	now            func() time.Time
}

func NewReportService(
	workerRepo repository.WorkerRepository,
	attendanceRepo repository.AttendanceRepository,
	logger *logrus.Logger,
) *ReportService {
	return &ReportService{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// CurrentMonth год и месяц текущей даты UTC
func (s *ReportService) CurrentMonth() (int, int) {
	now := s.now().UTC()
	return now.Year(), int(now.Month())
}

// Monthly строит отчет за месяц: одна строка на каждого работника
// в порядке выдачи списка работников
func (s *ReportService) Monthly(ctx context.Context, year, month int) ([]models.MonthlyReportRow, error) {
	workers, err := s.workerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}

	start, end := models.MonthRange(year, month)
	report := make([]models.MonthlyReportRow, 0, len(workers))

	for _, worker := range workers {
		records, err := s.attendanceRepo.GetByWorkerAndRange(ctx, worker.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("attendance of worker %s: %w", worker.ID, err)
		}

		report = append(report, models.NewMonthlyReportRow(worker, records))
	}

	s.logger.WithFields(logrus.Fields{
		"year":    year,
		"month":   month,
		"workers": len(report),
	}).Debug("Monthly report built")

	return report, nil
}

// Dashboard сводка за текущий день
func (s *ReportService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	total, err := s.workerRepo.Count(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("count workers: %w", err)
	}

	today := s.now().UTC().Format(models.DateLayout)
	records, err := s.attendanceRepo.GetByDate(ctx, today)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("today's attendance: %w", err)
	}

	return models.NewDashboardStats(int(total), records), nil
}
