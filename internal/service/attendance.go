package service

import (
	"context"
	"fmt"
	"time"

	"wageflow/internal/metrics"
	"wageflow/internal/models"
	"wageflow/internal/repository"

	"github.com/sirupsen/logrus"
)

type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	workerRepo     repository.WorkerRepository
	logger         *logrus.Logger
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	workerRepo repository.WorkerRepository,
	logger *logrus.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

// Today текущая дата UTC в формате YYYY-MM-DD
func (s *AttendanceService) Today() string {
	return s.now().UTC().Format(models.DateLayout)
}

// Mark отмечает работника за сегодня. Повторная отметка за тот же день
// перезаписывает предыдущую целиком, включая id.
func (s *AttendanceService) Mark(ctx context.Context, workerID string, clockIn, clockOut *string) (*models.Attendance, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("resolve worker: %w", err)
	}

	if worker == nil {
		s.logger.WithField("worker_id", workerID).Warn("Attendance for unknown worker")
		return nil, ErrWorkerNotFound
	}

	attendance, err := models.NewAttendance(worker, clockIn, clockOut, s.now())
	if err != nil {
		s.logger.WithError(err).WithField("worker_id", workerID).Error("Failed to compute attendance")
		return nil, fmt.Errorf("compute attendance: %w", err)
	}

	if err := s.attendanceRepo.Upsert(ctx, attendance); err != nil {
		return nil, fmt.Errorf("save attendance: %w", err)
	}

	metrics.AttendanceMarksTotal.WithLabelValues(attendance.Status).Inc()

	s.logger.WithFields(logrus.Fields{
		"worker_id":    workerID,
		"date":         attendance.Date,
		"status":       attendance.Status,
		"hours_worked": attendance.HoursWorked,
		"wage_earned":  attendance.WageEarned,
	}).Info("Attendance marked")

	return attendance, nil
}

// ListToday отметки за текущий день
func (s *AttendanceService) ListToday(ctx context.Context) ([]*models.Attendance, error) {
	return s.ListByDate(ctx, s.Today())
}

// ListByDate отметки за дату, формат даты не проверяется
func (s *AttendanceService) ListByDate(ctx context.Context, date string) ([]*models.Attendance, error) {
	records, err := s.attendanceRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list attendance by date: %w", err)
	}
	return records, nil
}

// ListByWorker история работника, новые даты первыми
func (s *AttendanceService) ListByWorker(ctx context.Context, workerID string) ([]*models.Attendance, error) {
	records, err := s.attendanceRepo.GetByWorkerID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("list attendance by worker: %w", err)
	}
	return records, nil
}
