package handler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"wageflow/internal/metrics"
	"wageflow/internal/models"
)

const unknownCommandText = "❌ Неизвестная команда. Используйте /help для списка команд."

const helpText = `📋 Доступные команды:

👷 Работники:
/workers - Список работников и их ставок

⏰ Посещаемость:
/today - Отметки за сегодня
/date ГГГГ-ММ-ДД - Отметки за конкретный день
    Пример: /date 2024-03-11

📊 Отчеты:
/dashboard - Сводка за сегодня
/report - Отчет за текущий месяц
/report [год месяц] - Отчет за месяц и год
    Пример: /report 2024 3

🛠 Утилиты:
/start - Начать работу с ботом
/help - Показать это сообщение`

// execute выполняет команду и возвращает текст ответа
func (h *Handler) execute(ctx context.Context, command, args string) string {
	switch command {
	case "start", "help":
		metrics.BotCommandsTotal.WithLabelValues(command).Inc()
		return helpText
	case "workers":
		metrics.BotCommandsTotal.WithLabelValues(command).Inc()
		return h.listWorkers(ctx)
	case "today":
		metrics.BotCommandsTotal.WithLabelValues(command).Inc()
		return h.attendanceForDate(ctx, h.attendance.Today())
	case "date":
		metrics.BotCommandsTotal.WithLabelValues(command).Inc()
		return h.attendanceByDate(ctx, args)
	case "dashboard":
		metrics.BotCommandsTotal.WithLabelValues(command).Inc()
		return h.dashboard(ctx)
	case "report":
		metrics.BotCommandsTotal.WithLabelValues(command).Inc()
		return h.monthlyReport(ctx, args)
	default:
		metrics.BotCommandsTotal.WithLabelValues("unknown").Inc()
		return unknownCommandText
	}
}

func (h *Handler) listWorkers(ctx context.Context) string {
	workers, err := h.workers.List(ctx)
	if err != nil {
		return h.failure("list workers", err)
	}

	// список ограничен, поэтому общее число берем отдельно
	total, err := h.workers.Count(ctx)
	if err != nil {
		return h.failure("count workers", err)
	}
	return formatWorkers(total, workers)
}

func (h *Handler) attendanceByDate(ctx context.Context, args string) string {
	date := strings.TrimSpace(args)
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return "❌ Укажите дату в формате ГГГГ-ММ-ДД.\nПример: /date 2024-03-11"
	}
	return h.attendanceForDate(ctx, date)
}

func (h *Handler) attendanceForDate(ctx context.Context, date string) string {
	records, err := h.attendance.ListByDate(ctx, date)
	if err != nil {
		return h.failure("list attendance", err)
	}
	return formatAttendance(date, records)
}

func (h *Handler) dashboard(ctx context.Context) string {
	stats, err := h.reports.Dashboard(ctx)
	if err != nil {
		return h.failure("load dashboard", err)
	}
	return formatDashboard(h.attendance.Today(), stats)
}

func (h *Handler) monthlyReport(ctx context.Context, args string) string {
	year, month, ok := parseYearMonth(args, h.reports.CurrentMonth)
	if !ok {
		return "❌ Неверный формат. Используйте /report или /report ГОД МЕСЯЦ.\nПример: /report 2024 3"
	}

	rows, err := h.reports.Monthly(ctx, year, month)
	if err != nil {
		return h.failure("build monthly report", err)
	}
	return formatReport(year, month, rows)
}

func (h *Handler) failure(action string, err error) string {
	h.logger.WithError(err).WithField("action", action).Error("Bot command failed")
	return "❌ Ошибка: " + err.Error()
}

// parseYearMonth разбирает "год месяц"; без аргументов берет текущий месяц
func parseYearMonth(args string, current func() (int, int)) (int, int, bool) {
	fields := strings.Fields(args)
	switch len(fields) {
	case 0:
		year, month := current()
		return year, month, true
	case 2:
		year, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, false
		}
		month, err := strconv.Atoi(fields[1])
		if err != nil || month < 1 || month > 12 {
			return 0, 0, false
		}
		return year, month, true
	default:
		return 0, 0, false
	}
}
