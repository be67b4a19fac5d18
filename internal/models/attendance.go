package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout формат хранения Attendance.Date
const DateLayout = "2006-01-02"

// Статусы отметок
const (
	StatusAbsent    = "absent"     // Нет отметки прихода
	StatusClockedIn = "clocked_in" // Пришел, но не ушел
	StatusPresent   = "present"    // Отмечены приход и уход
)

type Attendance struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	WorkerID    string    `gorm:"column:worker_id;type:varchar(36);not null;uniqueIndex:idx_attendance_worker_date,priority:1" json:"worker_id"`
	WorkerName  string    `gorm:"not null" json:"worker_name"`
	Date        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_worker_date,priority:2;index" json:"date"`
	ClockIn     *string   `json:"clock_in"`
	ClockOut    *string   `json:"clock_out"`
	HoursWorked float64   `gorm:"not null" json:"hours_worked"`
	WageEarned  float64   `gorm:"not null" json:"wage_earned"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// NewAttendance создает отметку работника w за текущий день (UTC).
// Часы, заработок и статус вычисляются из времени прихода/ухода.
func NewAttendance(w *Worker, clockIn, clockOut *string, now time.Time) (*Attendance, error) {
	now = now.UTC()
	a := &Attendance{
		ID:         uuid.NewString(),
		WorkerID:   w.ID,
		WorkerName: w.Name,
		Date:       now.Format(DateLayout),
		ClockIn:    clockIn,
		ClockOut:   clockOut,
		CreatedAt:  now,
	}
	if err := a.UpdateCalculatedFields(w.DailyWageRate); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateCalculatedFields пересчитывает часы, заработок и статус
func (a *Attendance) UpdateCalculatedFields(hourlyRate float64) error {
	a.HoursWorked = 0
	a.WageEarned = 0

	switch {
	case IsSet(a.ClockIn) && IsSet(a.ClockOut):
		in, err := ParseTimestamp(*a.ClockIn)
		if err != nil {
			return fmt.Errorf("clock_in: %w", err)
		}
		out, err := ParseTimestamp(*a.ClockOut)
		if err != nil {
			return fmt.Errorf("clock_out: %w", err)
		}

		hours := decimal.NewFromFloat(out.Sub(in).Seconds()).Div(decimal.NewFromInt(3600))
		a.HoursWorked = RoundMoney(hours)
		a.WageEarned = RoundMoney(hours.Mul(decimal.NewFromFloat(hourlyRate)))
		a.Status = StatusPresent
	case IsSet(a.ClockIn):
		a.Status = StatusClockedIn
	default:
		a.Status = StatusAbsent
	}

	return nil
}

// IsPresent проверяет, что день отработан полностью
func (a *Attendance) IsPresent() bool {
	return a.Status == StatusPresent
}

// IsOnSite проверяет, что работник пришел (ушел или еще на работе)
func (a *Attendance) IsOnSite() bool {
	return a.Status == StatusPresent || a.Status == StatusClockedIn
}

// IsSet проверяет, что время передано и не пустое.
// Пустая строка хранится как есть, но при расчете считается отсутствием.
func IsSet(s *string) bool {
	return s != nil && *s != ""
}
