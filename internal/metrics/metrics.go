package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wageflow_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wageflow_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	// Учет посещаемости
	AttendanceMarksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wageflow_attendance_marks_total",
			Help: "Total number of attendance marks by resulting status",
		},
		[]string{"status"},
	)

	WorkersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wageflow_workers_created_total",
			Help: "Total number of workers registered",
		},
	)

	WorkersDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wageflow_workers_deleted_total",
			Help: "Total number of workers deleted",
		},
	)

	BotCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wageflow_bot_commands_total",
			Help: "Total number of Telegram commands handled",
		},
		[]string{"command"},
	)
)
