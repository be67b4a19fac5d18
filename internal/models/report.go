package models

import "fmt"

// MonthlyReportRow итоги работника за месяц
type MonthlyReportRow struct {
	WorkerID      string  `json:"worker_id"`
	WorkerName    string  `json:"worker_name"`
	WorkerNumber  string  `json:"worker_number"`
	DailyWageRate float64 `json:"daily_wage_rate"`
	TotalDays     int     `json:"total_days"`
	PresentDays   int     `json:"present_days"`
	AbsentDays    int     `json:"absent_days"`
	TotalHours    float64 `json:"total_hours"`
	TotalWages    float64 `json:"total_wages"`
}

// NewMonthlyReportRow собирает итоги по отметкам w.
// В TotalDays идут все отметки независимо от статуса.
func NewMonthlyReportRow(w *Worker, records []*Attendance) MonthlyReportRow {
	row := MonthlyReportRow{
		WorkerID:      w.ID,
		WorkerName:    w.Name,
		WorkerNumber:  w.WorkerID,
		DailyWageRate: w.DailyWageRate,
		TotalDays:     len(records),
	}

	var hours, wages Total
	for _, r := range records {
		if r.IsPresent() {
			row.PresentDays++
		}
		hours.Add(r.HoursWorked)
		wages.Add(r.WageEarned)
	}

	if row.TotalDays > row.PresentDays {
		row.AbsentDays = row.TotalDays - row.PresentDays
	}
	row.TotalHours = hours.Rounded()
	row.TotalWages = wages.Rounded()

	return row
}

// DashboardStats сводка за текущий день (UTC)
type DashboardStats struct {
	TotalWorkers    int     `json:"total_workers"`
	PresentToday    int     `json:"present_today"`
	AbsentToday     int     `json:"absent_today"`
	TotalHoursToday float64 `json:"total_hours_today"`
	TotalWagesToday float64 `json:"total_wages_today"`
}

// NewDashboardStats считает сводку по сегодняшним отметкам.
// AbsentToday может быть отрицательным.
func NewDashboardStats(totalWorkers int, today []*Attendance) DashboardStats {
	stats := DashboardStats{TotalWorkers: totalWorkers}

	var hours, wages Total
	for _, r := range today {
		if r.IsOnSite() {
			stats.PresentToday++
		}
		hours.Add(r.HoursWorked)
		wages.Add(r.WageEarned)
	}

	stats.AbsentToday = totalWorkers - stats.PresentToday
	stats.TotalHoursToday = hours.Rounded()
	stats.TotalWagesToday = wages.Rounded()

	return stats
}

// MonthRange возвращает границы месяца [start, end) строками.
// Для декабря end = 1 января следующего года. month не проверяется.
func MonthRange(year, month int) (string, string) {
	start := fmt.Sprintf("%d-%02d-01", year, month)
	if month == 12 {
		return start, fmt.Sprintf("%d-01-01", year+1)
	}
	return start, fmt.Sprintf("%d-%02d-01", year, month+1)
}
