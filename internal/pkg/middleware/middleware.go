package middleware

import (
	"strings"

	"railway-reservation/internal/module/session"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const bearerPrefix = "Bearer "

type Middleware struct {
	Log      *otelzap.Logger
	Sessions *session.Registry
}

// ValidateToken resolves the bearer token to an account and stores the
// username and token in the request locals.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get(fiber.HeaderAuthorization)
	if auth == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	if !strings.HasPrefix(auth, bearerPrefix) {
		m.Log.Ctx(ctx.UserContext()).Error("error parse bearer token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error parse bearer token"))
	}
	token := strings.TrimSpace(auth[len(bearerPrefix):])

	handle, ok := m.Sessions.Resolve(token)
	if !ok {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("username", handle.Username)
	ctx.Locals("token", token)

	return ctx.Next()
}
