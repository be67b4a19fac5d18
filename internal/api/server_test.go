package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"wageflow/internal/config"
	"wageflow/internal/database"
	"wageflow/internal/logging"
	"wageflow/internal/repository"
	"wageflow/internal/service"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := logging.Discard()
	db, err := database.Open(&config.Config{
		DatabaseDriver: database.DriverSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "api.db"),
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	workerRepo, err := repository.NewGormWorkerRepository(db, logger)
	require.NoError(t, err)
	attendanceRepo, err := repository.NewGormAttendanceRepository(db, logger)
	require.NoError(t, err)

	clock := func() time.Time { return testNow }
	h := NewHandler(
		service.NewWorkerService(workerRepo, logger).WithClock(clock),
		service.NewAttendanceService(attendanceRepo, workerRepo, logger).WithClock(clock),
		service.NewReportService(workerRepo, attendanceRepo, logger).WithClock(clock),
		logger,
	)

	return NewServer(h, []string{"*"})
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out), string(raw))
}

func createWorker(t *testing.T, app *fiber.App, name, workerID string, rate float64) map[string]interface{} {
	t.Helper()

	status, raw := doRequest(t, app, http.MethodPost, "/api/workers", fiber.Map{
		"name":            name,
		"worker_id":       workerID,
		"daily_wage_rate": rate,
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	var worker map[string]interface{}
	decode(t, raw, &worker)
	return worker
}

func TestRootAndHealth(t *testing.T) {
	app := newTestApp(t)

	status, raw := doRequest(t, app, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"WageFlow API"}`, string(raw))

	status, raw = doRequest(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", string(raw))
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)

	doRequest(t, app, http.MethodGet, "/api/workers", nil)

	status, raw := doRequest(t, app, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "wageflow_api_requests_total")
}

func TestWorkersCRUD(t *testing.T) {
	app := newTestApp(t)

	status, raw := doRequest(t, app, http.MethodGet, "/api/workers", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	created := createWorker(t, app, "Ann", "W-1", 500)
	id := created["id"].(string)
	assert.Len(t, id, 36)
	assert.Equal(t, "W-1", created["worker_id"])
	assert.Equal(t, 500.0, created["daily_wage_rate"])
	assert.Equal(t, "2024-03-11T12:00:00Z", created["created_at"])

	status, raw = doRequest(t, app, http.MethodGet, "/api/workers/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	var fetched map[string]interface{}
	decode(t, raw, &fetched)
	assert.Equal(t, "Ann", fetched["name"])

	status, raw = doRequest(t, app, http.MethodPut, "/api/workers/"+id, fiber.Map{"daily_wage_rate": 600})
	assert.Equal(t, http.StatusOK, status, string(raw))
	var updated map[string]interface{}
	decode(t, raw, &updated)
	assert.Equal(t, 600.0, updated["daily_wage_rate"])
	assert.Equal(t, "Ann", updated["name"])

	status, raw = doRequest(t, app, http.MethodDelete, "/api/workers/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Worker deleted successfully"}`, string(raw))

	status, raw = doRequest(t, app, http.MethodGet, "/api/workers/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"Worker not found"}`, string(raw))
}

func TestCreateWorker_DuplicateWorkerID(t *testing.T) {
	app := newTestApp(t)
	createWorker(t, app, "Ann", "W-1", 500)

	status, raw := doRequest(t, app, http.MethodPost, "/api/workers", fiber.Map{
		"name":            "Bob",
		"worker_id":       "W-1",
		"daily_wage_rate": 300,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"detail":"Worker ID already exists"}`, string(raw))
}

func TestCreateWorker_Validation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing rate", fiber.Map{"name": "Ann", "worker_id": "W-1"}},
		{"missing name", fiber.Map{"worker_id": "W-1", "daily_wage_rate": 100}},
		{"missing worker_id", fiber.Map{"name": "Ann", "daily_wage_rate": 100}},
		{"null name", fiber.Map{"name": nil, "worker_id": "W-1", "daily_wage_rate": 100}},
		{"negative rate", fiber.Map{"name": "Ann", "worker_id": "W-1", "daily_wage_rate": -1}},
		{"rate is a string", fiber.Map{"name": "Ann", "worker_id": "W-1", "daily_wage_rate": "ten"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := doRequest(t, app, http.MethodPost, "/api/workers", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, status, string(raw))

			var body map[string]interface{}
			decode(t, raw, &body)
			assert.NotEmpty(t, body["detail"])
		})
	}
}

func TestCreateWorker_EmptyStringsAccepted(t *testing.T) {
	app := newTestApp(t)

	status, raw := doRequest(t, app, http.MethodPost, "/api/workers", fiber.Map{
		"name":            "",
		"worker_id":       "W-1",
		"daily_wage_rate": 10,
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	var worker map[string]interface{}
	decode(t, raw, &worker)
	assert.Equal(t, "", worker["name"])
	assert.Equal(t, "W-1", worker["worker_id"])
}

func TestUpdateWorker_Errors(t *testing.T) {
	app := newTestApp(t)
	first := createWorker(t, app, "Ann", "W-1", 500)
	createWorker(t, app, "Bob", "W-2", 300)

	status, raw := doRequest(t, app, http.MethodPut, "/api/workers/missing", fiber.Map{"name": "X"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"Worker not found"}`, string(raw))

	// worker_id не перепроверяется на уникальность при обновлении
	status, raw = doRequest(t, app, http.MethodPut, "/api/workers/"+first["id"].(string), fiber.Map{"worker_id": "W-2"})
	assert.Equal(t, http.StatusOK, status)
	var updated map[string]interface{}
	decode(t, raw, &updated)
	assert.Equal(t, "W-2", updated["worker_id"])

	status, _ = doRequest(t, app, http.MethodPut, "/api/workers/"+first["id"].(string), fiber.Map{"daily_wage_rate": -5})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/workers/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMarkAttendance(t *testing.T) {
	app := newTestApp(t)
	worker := createWorker(t, app, "Ann", "W-1", 500)
	id := worker["id"].(string)

	status, raw := doRequest(t, app, http.MethodPost, "/api/attendance", fiber.Map{
		"worker_id": id,
		"clock_in":  "2024-03-11T09:00:00",
		"clock_out": "2024-03-11T17:00:00",
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	var record map[string]interface{}
	decode(t, raw, &record)
	assert.Equal(t, "present", record["status"])
	assert.Equal(t, 8.0, record["hours_worked"])
	assert.Equal(t, 4000.0, record["wage_earned"])
	assert.Equal(t, "2024-03-11", record["date"])
	assert.Equal(t, "Ann", record["worker_name"])

	status, raw = doRequest(t, app, http.MethodGet, "/api/attendance/today", nil)
	assert.Equal(t, http.StatusOK, status)
	var today []map[string]interface{}
	decode(t, raw, &today)
	require.Len(t, today, 1)
	assert.Equal(t, id, today[0]["worker_id"])

	status, raw = doRequest(t, app, http.MethodGet, "/api/attendance/date/2024-03-10", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	status, raw = doRequest(t, app, http.MethodGet, "/api/attendance/worker/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	var history []map[string]interface{}
	decode(t, raw, &history)
	assert.Len(t, history, 1)
}

func TestMarkAttendance_Errors(t *testing.T) {
	app := newTestApp(t)
	worker := createWorker(t, app, "Ann", "W-1", 500)

	status, raw := doRequest(t, app, http.MethodPost, "/api/attendance", fiber.Map{"worker_id": "missing"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"Worker not found"}`, string(raw))

	// пустой worker_id просто не находится
	status, raw = doRequest(t, app, http.MethodPost, "/api/attendance", fiber.Map{"worker_id": ""})
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"detail":"Worker not found"}`, string(raw))

	status, _ = doRequest(t, app, http.MethodPost, "/api/attendance", fiber.Map{})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, raw = doRequest(t, app, http.MethodPost, "/api/attendance", fiber.Map{
		"worker_id": worker["id"],
		"clock_in":  "not-a-time",
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, string(raw))
}

func TestMarkAttendance_EmptyClockValuesKept(t *testing.T) {
	app := newTestApp(t)
	worker := createWorker(t, app, "Ann", "W-1", 500)

	status, raw := doRequest(t, app, http.MethodPost, "/api/attendance", fiber.Map{
		"worker_id": worker["id"],
		"clock_in":  "",
		"clock_out": "",
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	var record map[string]interface{}
	decode(t, raw, &record)
	assert.Equal(t, "absent", record["status"])
	assert.Equal(t, "", record["clock_in"])
	assert.Equal(t, "", record["clock_out"])

	status, raw = doRequest(t, app, http.MethodGet, "/api/attendance/today", nil)
	require.Equal(t, http.StatusOK, status)
	var today []map[string]interface{}
	decode(t, raw, &today)
	require.Len(t, today, 1)
	assert.Equal(t, "", today[0]["clock_in"])
}

func TestMonthlyReportAndDashboard(t *testing.T) {
	app := newTestApp(t)
	worker := createWorker(t, app, "Ann", "W-1", 200)

	status, raw := doRequest(t, app, http.MethodPost, "/api/attendance", fiber.Map{
		"worker_id": worker["id"],
		"clock_in":  "2024-03-11T08:00:00Z",
		"clock_out": "2024-03-11T12:00:00Z",
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	status, raw = doRequest(t, app, http.MethodGet, "/api/attendance/monthly/2024/3", nil)
	require.Equal(t, http.StatusOK, status, string(raw))
	var report []map[string]interface{}
	decode(t, raw, &report)
	require.Len(t, report, 1)
	assert.Equal(t, "W-1", report[0]["worker_number"])
	assert.Equal(t, 1.0, report[0]["present_days"])
	assert.Equal(t, 0.0, report[0]["absent_days"])
	assert.Equal(t, 4.0, report[0]["total_hours"])
	assert.Equal(t, 800.0, report[0]["total_wages"])

	status, raw = doRequest(t, app, http.MethodGet, "/api/attendance/monthly/2024/4", nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, raw, &report)
	assert.Equal(t, 0.0, report[0]["total_days"])

	status, raw = doRequest(t, app, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{
		"total_workers": 1,
		"present_today": 1,
		"absent_today": 0,
		"total_hours_today": 4,
		"total_wages_today": 800
	}`, string(raw))
}

func TestMonthlyReport_BadParams(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, http.MethodGet, "/api/attendance/monthly/abc/3", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/attendance/monthly/2024/x", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/workers", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
