package handler

import (
	"fmt"

	"railway-reservation/internal/module/catalog/usecases"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type CatalogHandler struct {
	Log     *otelzap.Logger
	Usecase usecases.Usecase
}

func (h *CatalogHandler) ListTrains(ctx *fiber.Ctx) error {
	trains, err := h.Usecase.ListTrains(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list trains: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, trains, "success list trains")
}

func (h *CatalogHandler) GetTrain(ctx *fiber.Ctx) error {
	trainID, err := ctx.ParamsInt("id")
	if err != nil || trainID <= 0 {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse train id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse train id"))
	}

	train, err := h.Usecase.GetTrain(ctx.UserContext(), int64(trainID))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get train: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, train, "success get train")
}
