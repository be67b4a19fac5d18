package handler

import (
	"fmt"
	"strings"

	"wageflow/internal/models"
)

var statusLabels = map[string]string{
	models.StatusPresent:   "✅ отработал",
	models.StatusClockedIn: "⏳ на смене",
	models.StatusAbsent:    "❌ отсутствует",
}

func formatWorkers(total int, workers []*models.Worker) string {
	if total == 0 {
		return "👷 Работников пока нет."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👷 Работники (%d):\n", total))
	for i, w := range workers {
		sb.WriteString(fmt.Sprintf("\n%d. %s [%s]\n   Ставка: %.2f/час", i+1, w.Name, w.WorkerID, w.DailyWageRate))
	}
	if total > len(workers) {
		sb.WriteString(fmt.Sprintf("\n\nПоказаны первые %d.", len(workers)))
	}
	return sb.String()
}

func formatAttendance(date string, records []*models.Attendance) string {
	if len(records) == 0 {
		return fmt.Sprintf("📅 %s: отметок нет.", date)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 Посещаемость за %s:\n", date))
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("\n• %s - %s", r.WorkerName, statusLabel(r.Status)))
		if models.IsSet(r.ClockIn) {
			sb.WriteString(fmt.Sprintf("\n   Приход: %s", *r.ClockIn))
		}
		if models.IsSet(r.ClockOut) {
			sb.WriteString(fmt.Sprintf("\n   Уход: %s", *r.ClockOut))
		}
		if r.IsPresent() {
			sb.WriteString(fmt.Sprintf("\n   Часы: %.2f, заработок: %.2f", r.HoursWorked, r.WageEarned))
		}
	}
	return sb.String()
}

func formatDashboard(date string, stats models.DashboardStats) string {
	return fmt.Sprintf(`📊 Сводка за %s:

👷 Всего работников: %d
✅ На месте: %d
❌ Отсутствуют: %d
⏱ Часы: %.2f
💰 Заработок: %.2f`,
		date,
		stats.TotalWorkers,
		stats.PresentToday,
		stats.AbsentToday,
		stats.TotalHoursToday,
		stats.TotalWagesToday,
	)
}

func formatReport(year, month int, rows []models.MonthlyReportRow) string {
	if len(rows) == 0 {
		return fmt.Sprintf("📊 Отчет за %02d.%d: работников нет.", month, year)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 Отчет за %02d.%d:\n", month, year))

	var hours, wages models.Total
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("\n• %s [%s]\n   Дней: %d, присутствовал: %d, отсутствовал: %d\n   Часы: %.2f, заработок: %.2f",
			row.WorkerName, row.WorkerNumber,
			row.TotalDays, row.PresentDays, row.AbsentDays,
			row.TotalHours, row.TotalWages,
		))
		hours.Add(row.TotalHours)
		wages.Add(row.TotalWages)
	}
	sb.WriteString(fmt.Sprintf("\n\nИтого: %.2f ч, %.2f", hours.Rounded(), wages.Rounded()))
	return sb.String()
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
