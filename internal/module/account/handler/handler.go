package handler

import (
	"fmt"

	"railway-reservation/internal/module/account/models/request"
	"railway-reservation/internal/module/account/models/response"
	"railway-reservation/internal/module/account/usecases"
	"railway-reservation/internal/module/session"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type AccountHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Sessions  *session.Registry
}

func (h *AccountHandler) Register(ctx *fiber.Ctx) error {
	var req request.Register
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.Register(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error register: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "registration successful, you can now login")
}

func (h *AccountHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	handle, err := h.Usecase.Authenticate(ctx.UserContext(), req.Username, req.Password)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error login: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	resp := response.Login{
		Username: handle.Username,
		Token:    h.Sessions.Issue(handle),
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "login successful")
}

// Logout runs behind ValidateToken, which stores the token in the locals.
func (h *AccountHandler) Logout(ctx *fiber.Ctx) error {
	token, _ := ctx.Locals("token").(string)
	h.Sessions.Revoke(token)
	return helpers.RespSuccess(ctx, h.Log, nil, "logged out")
}
