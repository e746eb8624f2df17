package http

import (
	"context"
	"fmt"
	"time"

	"railway-reservation/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

func SetupHttpEngine(log *otelzap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "railway-reservation",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return ctx.Status(fe.Code).JSON(helpers.Response{Message: fe.Message})
			}
			return helpers.RespError(ctx, log, err)
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	return app
}

// StartHttpServer blocks until ctx is cancelled or the listener fails.
func StartHttpServer(ctx context.Context, app *fiber.App, port string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(fmt.Sprintf(":%s", port))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return app.ShutdownWithTimeout(5 * time.Second)
	}
}
