package repository

import (
	"context"
	"errors"

	"wageflow/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MaxListSize ограничение на количество записей в выборке
const MaxListSize = 1000

type WorkerRepository interface {
	Create(ctx context.Context, worker *models.Worker) error
	GetAll(ctx context.Context) ([]*models.Worker, error)
	GetByID(ctx context.Context, id string) (*models.Worker, error)
	ExistsByWorkerID(ctx context.Context, workerID string) (bool, error)
	Update(ctx context.Context, id string, update models.WorkerUpdate) (*models.Worker, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type GormWorkerRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkerRepository(db *gorm.DB, logger *logrus.Logger) (*GormWorkerRepository, error) {
	// Автомиграция
	if err := db.AutoMigrate(&models.Worker{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate workers table")
		return nil, err
	}

	logger.Debug("Worker repository initialized")

	return &GormWorkerRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormWorkerRepository) Create(ctx context.Context, worker *models.Worker) error {
	result := r.db.WithContext(ctx).Create(worker)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create worker")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":        worker.ID,
		"worker_id": worker.WorkerID,
	}).Info("Worker created")

	return nil
}

func (r *GormWorkerRepository) GetAll(ctx context.Context) ([]*models.Worker, error) {
	workers := make([]*models.Worker, 0)
	result := r.db.WithContext(ctx).Limit(MaxListSize).Find(&workers)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list workers")
		return nil, result.Error
	}

	return workers, nil
}

// GetByID возвращает (nil, nil), если работник не найден
func (r *GormWorkerRepository) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	var worker models.Worker
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&worker)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Worker not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get worker by ID")
		return nil, result.Error
	}

	return &worker, nil
}

func (r *GormWorkerRepository) ExistsByWorkerID(ctx context.Context, workerID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Worker{}).Where("worker_id = ?", workerID).Count(&count)

	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Update применяет только переданные поля и возвращает запись целиком.
// (nil, nil), если работник не найден.
func (r *GormWorkerRepository) Update(ctx context.Context, id string, update models.WorkerUpdate) (*models.Worker, error) {
	var updated *models.Worker

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var worker models.Worker
		result := tx.Where("id = ?", id).First(&worker)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil
		}
		if result.Error != nil {
			return result.Error
		}

		if !update.IsEmpty() {
			result = tx.Model(&models.Worker{}).Where("id = ?", id).Updates(update.Columns())
			if result.Error != nil {
				return result.Error
			}
			update.Apply(&worker)
		}

		updated = &worker
		return nil
	})
	if err != nil {
		r.logger.WithError(err).WithField("id", id).Error("Failed to update worker")
		return nil, err
	}

	if updated != nil {
		r.logger.WithFields(logrus.Fields{
			"id":     id,
			"fields": len(update.Columns()),
		}).Info("Worker updated")
	}

	return updated, nil
}

// Delete возвращает false, если удалять было нечего
func (r *GormWorkerRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Worker{})

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete worker")
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Warn("Worker not found for deletion")
		return false, nil
	}

	r.logger.WithField("id", id).Info("Worker deleted")
	return true, nil
}

func (r *GormWorkerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).Model(&models.Worker{}).Count(&total)

	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
