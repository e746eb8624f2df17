package helpers

import (
	"fmt"

	"railway-reservation/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Available *int   `json:"available,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	status := errors.HTTPStatus(err)
	body := &ErrorBody{Type: string(errors.TypeOf(err))}

	if ce, ok := errors.As(err); ok {
		body.Reason = ce.Reason
	}
	if available, ok := errors.AvailableSeats(err); ok {
		body.Available = &available
	}

	if status >= fiber.StatusInternalServerError {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("internal error: %v", err))
	}

	return ctx.Status(status).JSON(Response{
		Message: err.Error(),
		Error:   body,
	})
}
