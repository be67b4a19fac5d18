package api

import (
	"github.com/gofiber/fiber/v2"
)

type markAttendanceRequest struct {
	WorkerID *string `json:"worker_id" validate:"required"`
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
}

// POST /api/attendance
func (h *Handler) MarkAttendance(c *fiber.Ctx) error {
	var req markAttendanceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	attendance, err := h.attendance.Mark(c.UserContext(), *req.WorkerID, req.ClockIn, req.ClockOut)
	if err != nil {
		return err
	}

	return c.JSON(attendance)
}

// GET /api/attendance/today
func (h *Handler) TodayAttendance(c *fiber.Ctx) error {
	records, err := h.attendance.ListToday(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// GET /api/attendance/date/:date
func (h *Handler) AttendanceByDate(c *fiber.Ctx) error {
	records, err := h.attendance.ListByDate(c.UserContext(), c.Params("date"))
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// GET /api/attendance/worker/:id
func (h *Handler) WorkerAttendance(c *fiber.Ctx) error {
	records, err := h.attendance.ListByWorker(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(records)
}
