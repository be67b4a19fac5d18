package api

import (
	"wageflow/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Указатели нужны, чтобы "required" проверял наличие ключа, а пустая строка проходила
type createWorkerRequest struct {
	Name          *string  `json:"name" validate:"required"`
	WorkerID      *string  `json:"worker_id" validate:"required"`
	DailyWageRate *float64 `json:"daily_wage_rate" validate:"required,gte=0"`
}

type updateWorkerRequest struct {
	Name          *string  `json:"name"`
	WorkerID      *string  `json:"worker_id"`
	DailyWageRate *float64 `json:"daily_wage_rate" validate:"omitempty,gte=0"`
}

// POST /api/workers
func (h *Handler) CreateWorker(c *fiber.Ctx) error {
	var req createWorkerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	worker, err := h.workers.Create(c.UserContext(), *req.Name, *req.WorkerID, *req.DailyWageRate)
	if err != nil {
		return err
	}

	return c.JSON(worker)
}

// GET /api/workers
func (h *Handler) ListWorkers(c *fiber.Ctx) error {
	workers, err := h.workers.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(workers)
}

// GET /api/workers/:id
func (h *Handler) GetWorker(c *fiber.Ctx) error {
	worker, err := h.workers.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(worker)
}

// PUT /api/workers/:id
func (h *Handler) UpdateWorker(c *fiber.Ctx) error {
	var req updateWorkerRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	worker, err := h.workers.Update(c.UserContext(), c.Params("id"), models.WorkerUpdate{
		Name:          req.Name,
		WorkerID:      req.WorkerID,
		DailyWageRate: req.DailyWageRate,
	})
	if err != nil {
		return err
	}

	return c.JSON(worker)
}

// DELETE /api/workers/:id
func (h *Handler) DeleteWorker(c *fiber.Ctx) error {
	if err := h.workers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Worker deleted successfully"})
}
