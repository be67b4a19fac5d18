package api

import (
	"strconv"
	"time"

	"wageflow/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// metricsMiddleware считает запросы и их длительность по маршрутам.
// Ошибку обрабатываем здесь же, чтобы статус ответа был уже известен.
func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		route := c.Route().Path
		metrics.APIRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(c.Response().StatusCode())).Inc()
		metrics.APIRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return nil
	}
}
