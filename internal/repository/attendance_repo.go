package repository

import (
	"context"

	"wageflow/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	Upsert(ctx context.Context, attendance *models.Attendance) error
	GetByDate(ctx context.Context, date string) ([]*models.Attendance, error)
	GetByWorkerID(ctx context.Context, workerID string) ([]*models.Attendance, error)
	GetByWorkerAndRange(ctx context.Context, workerID, start, end string) ([]*models.Attendance, error)
}

type GormAttendanceRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// Колонки, перезаписываемые при повторной отметке за тот же день
var upsertColumns = []string{
	"id",
	"worker_name",
	"clock_in",
	"clock_out",
	"hours_worked",
	"wage_earned",
	"status",
	"created_at",
}

func NewGormAttendanceRepository(db *gorm.DB, logger *logrus.Logger) (*GormAttendanceRepository, error) {
	// Автомиграция
	if err := db.AutoMigrate(&models.Attendance{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate attendance table")
		return nil, err
	}

	logger.Debug("Attendance repository initialized")

	return &GormAttendanceRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert вставляет отметку или перезаписывает существующую за (worker_id, date)
// одним запросом INSERT ... ON CONFLICT
func (r *GormAttendanceRepository) Upsert(ctx context.Context, attendance *models.Attendance) error {
	fields := logrus.Fields{
		"worker_id": attendance.WorkerID,
		"date":      attendance.Date,
		"status":    attendance.Status,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "worker_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(attendance)

	if result.Error != nil {
		r.logger.WithError(result.Error).WithFields(fields).Error("Failed to upsert attendance")
		return result.Error
	}

	r.logger.WithFields(fields).Info("Attendance saved")
	return nil
}

func (r *GormAttendanceRepository) GetByDate(ctx context.Context, date string) ([]*models.Attendance, error) {
	records := make([]*models.Attendance, 0)
	result := r.db.WithContext(ctx).Where("date = ?", date).Limit(MaxListSize).Find(&records)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance by date")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"date":  date,
		"count": len(records),
	}).Debug("Retrieved attendance by date")

	return records, nil
}

func (r *GormAttendanceRepository) GetByWorkerID(ctx context.Context, workerID string) ([]*models.Attendance, error) {
	records := make([]*models.Attendance, 0)
	result := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("date DESC").
		Limit(MaxListSize).
		Find(&records)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance by worker ID")
		return nil, result.Error
	}

	return records, nil
}

// GetByWorkerAndRange отметки за полуинтервал дат [start, end).
// Строки YYYY-MM-DD сравниваются лексикографически, что совпадает с порядком дат.
func (r *GormAttendanceRepository) GetByWorkerAndRange(ctx context.Context, workerID, start, end string) ([]*models.Attendance, error) {
	records := make([]*models.Attendance, 0)
	result := r.db.WithContext(ctx).
		Where("worker_id = ? AND date >= ? AND date < ?", workerID, start, end).
		Limit(MaxListSize).
		Find(&records)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get attendance by worker and range")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"worker_id": workerID,
		"start":     start,
		"end":       end,
		"count":     len(records),
	}).Debug("Retrieved attendance by worker and range")

	return records, nil
}
