package api

import (
	"errors"
	"fmt"
	"strings"

	"wageflow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// errorHandler отдает ошибки в виде {"detail": "..."}
func errorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		detail := "Internal Server Error"

		var svcErr *service.Error
		var fiberErr *fiber.Error
		var validationErrs validator.ValidationErrors

		switch {
		case errors.As(err, &svcErr):
			code = statusFor(svcErr)
			detail = svcErr.Detail
		case errors.As(err, &validationErrs):
			code = fiber.StatusUnprocessableEntity
			detail = describeValidation(validationErrs)
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			detail = fiberErr.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.WithError(err).WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
			}).Error("Request failed")
		}

		return c.Status(code).JSON(fiber.Map{"detail": detail})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
