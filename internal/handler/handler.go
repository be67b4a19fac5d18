package handler

import (
	"context"

	"wageflow/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Sender отправляет ответ в чат
type Sender interface {
	SendText(chatID int64, text string)
}

type Handler struct {
	sender     Sender
	workers    *service.WorkerService
	attendance *service.AttendanceService
	reports    *service.ReportService
	logger     *logrus.Logger
}

func NewHandler(
	sender Sender,
	workers *service.WorkerService,
	attendance *service.AttendanceService,
	reports *service.ReportService,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		sender:     sender,
		workers:    workers,
		attendance: attendance,
		reports:    reports,
		logger:     logger,
	}
}

// HandleUpdates читает обновления до закрытия канала или отмены контекста
func (h *Handler) HandleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *Handler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	username := ""
	if message.From != nil {
		username = message.From.UserName
	}
	h.logger.WithFields(logrus.Fields{
		"chat_id":  message.Chat.ID,
		"username": username,
	}).Infof("Received message: %s", message.Text)

	if !message.IsCommand() {
		h.sender.SendText(message.Chat.ID, unknownCommandText)
		return
	}

	reply := h.execute(ctx, message.Command(), message.CommandArguments())
	h.sender.SendText(message.Chat.ID, reply)
}
