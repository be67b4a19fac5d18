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

type WorkerService struct {
	repo   repository.WorkerRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewWorkerService(repo repository.WorkerRepository, logger *logrus.Logger) *WorkerService {
	return &WorkerService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *WorkerService) WithClock(now func() time.Time) *WorkerService {
	s.now = now
	return s
}

// Create регистрирует работника, worker_id должен быть уникальным
func (s *WorkerService) Create(ctx context.Context, name, workerID string, dailyWageRate float64) (*models.Worker, error) {
	s.logger.WithFields(logrus.Fields{
		"name":      name,
		"worker_id": workerID,
	}).Info("Creating worker")

	exists, err := s.repo.ExistsByWorkerID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("check worker_id: %w", err)
	}

	if exists {
		s.logger.WithField("worker_id", workerID).Warn("Worker ID already exists")
		return nil, ErrWorkerIDExists
	}

	worker := models.NewWorker(name, workerID, dailyWageRate, s.now())
	if err := s.repo.Create(ctx, worker); err != nil {
		return nil, fmt.Errorf("create worker: %w", err)
	}

	metrics.WorkersCreatedTotal.Inc()
	return worker, nil
}

// List возвращает всех работников (не более 1000)
func (s *WorkerService) List(ctx context.Context) ([]*models.Worker, error) {
	return s.repo.GetAll(ctx)
}

func (s *WorkerService) Get(ctx context.Context, id string) (*models.Worker, error) {
	worker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get worker: %w", err)
	}

	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	return worker, nil
}

// Update применяет только переданные поля. Уникальность worker_id
// при обновлении не проверяется.
func (s *WorkerService) Update(ctx context.Context, id string, update models.WorkerUpdate) (*models.Worker, error) {
	worker, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update worker: %w", err)
	}

	if worker == nil {
		s.logger.WithField("id", id).Warn("Worker not found for update")
		return nil, ErrWorkerNotFound
	}

	return worker, nil
}

func (s *WorkerService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}

	if !deleted {
		return ErrWorkerNotFound
	}

	metrics.WorkersDeletedTotal.Inc()
	return nil
}

func (s *WorkerService) Count(ctx context.Context) (int, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count workers: %w", err)
	}
	return int(total), nil
}
