package models

import (
	"time"

	"github.com/google/uuid"
)

type Worker struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	WorkerID      string    `gorm:"column:worker_id;type:varchar(64);not null;index" json:"worker_id"`
	DailyWageRate float64   `gorm:"not null" json:"daily_wage_rate"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

// TableName задает имя таблицы в БД
func (Worker) TableName() string {
	return "workers"
}

// NewWorker создает работника с новым id, createdAt хранится в UTC
func NewWorker(name, workerID string, dailyWageRate float64, createdAt time.Time) *Worker {
	return &Worker{
		ID:            uuid.NewString(),
		Name:          name,
		WorkerID:      workerID,
		DailyWageRate: dailyWageRate,
		CreatedAt:     createdAt.UTC(),
	}
}

// WorkerUpdate частичное обновление: nil-поля не трогаем
type WorkerUpdate struct {
	Name          *string  `json:"name"`
	WorkerID      *string  `json:"worker_id"`
	DailyWageRate *float64 `json:"daily_wage_rate"`
}

// IsEmpty проверяет, что не передано ни одного поля
func (u WorkerUpdate) IsEmpty() bool {
	return u.Name == nil && u.WorkerID == nil && u.DailyWageRate == nil
}

// Columns возвращает колонки и значения переданных полей
func (u WorkerUpdate) Columns() map[string]interface{} {
	columns := make(map[string]interface{}, 3)
	if u.Name != nil {
		columns["name"] = *u.Name
	}
	if u.WorkerID != nil {
		columns["worker_id"] = *u.WorkerID
	}
	if u.DailyWageRate != nil {
		columns["daily_wage_rate"] = *u.DailyWageRate
	}
	return columns
}

// Apply переносит переданные поля в w
func (u WorkerUpdate) Apply(w *Worker) {
	if u.Name != nil {
		w.Name = *u.Name
	}
	if u.WorkerID != nil {
		w.WorkerID = *u.WorkerID
	}
	if u.DailyWageRate != nil {
		w.DailyWageRate = *u.DailyWageRate
	}
}
