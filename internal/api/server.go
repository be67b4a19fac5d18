package api

import (
	"strings"

	"wageflow/internal/service"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	workers    *service.WorkerService
	attendance *service.AttendanceService
	reports    *service.ReportService
	logger     *logrus.Logger
}

func NewHandler(
	workers *service.WorkerService,
	attendance *service.AttendanceService,
	reports *service.ReportService,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		workers:    workers,
		attendance: attendance,
		reports:    reports,
		logger:     logger,
	}
}

// NewServer собирает fiber-приложение со всеми маршрутами
func NewServer(h *Handler, corsOrigins []string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "WageFlow API",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(h.logger),
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(metricsMiddleware())
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
		Output:     h.logger.WriterLevel(logrus.InfoLevel),
	}))
	app.Use(corsMiddleware(corsOrigins))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h.Register(app.Group("/api"))

	return app
}

// Register вешает маршруты API на router
func (h *Handler) Register(r fiber.Router) {
	r.Get("/", h.Root)

	workers := r.Group("/workers")
	workers.Post("/", h.CreateWorker)
	workers.Get("/", h.ListWorkers)
	workers.Get("/:id", h.GetWorker)
	workers.Put("/:id", h.UpdateWorker)
	workers.Delete("/:id", h.DeleteWorker)

	attendance := r.Group("/attendance")
	attendance.Post("/", h.MarkAttendance)
	attendance.Get("/today", h.TodayAttendance)
	attendance.Get("/date/:date", h.AttendanceByDate)
	attendance.Get("/monthly/:year/:month", h.MonthlyReport)
	attendance.Get("/worker/:id", h.WorkerAttendance)

	r.Get("/dashboard/stats", h.DashboardStats)
}

func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "WageFlow API"})
}

func corsMiddleware(origins []string) fiber.Handler {
	allowOrigins := strings.Join(origins, ",")
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		// fiber запрещает credentials вместе с "*"
		AllowCredentials: allowOrigins != "*",
	})
}
