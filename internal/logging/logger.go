package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New создает логгер в общем формате приложения
func New(output io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return logger
}

// Discard логгер для тестов
func Discard() *logrus.Logger {
	return New(io.Discard)
}
