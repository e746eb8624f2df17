package handler

import (
	"fmt"

	accountEntity "railway-reservation/internal/module/account/models/entity"
	"railway-reservation/internal/module/booking/models/request"
	"railway-reservation/internal/module/booking/models/response"
	"railway-reservation/internal/module/booking/usecases"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func account(ctx *fiber.Ctx) accountEntity.AccountHandle {
	username, _ := ctx.Locals("username").(string)
	return accountEntity.AccountHandle{Username: username}
}

func (h *BookingHandler) QuoteTicket(ctx *fiber.Ctx) error {
	trainID, err := ctx.ParamsInt("id")
	if err != nil || trainID <= 0 {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse train id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse train id"))
	}

	seats := ctx.QueryInt("seats", 0)

	resp, err := h.Usecase.Quote(ctx.UserContext(), int64(trainID), seats)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error quote ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success quote ticket")
}

func (h *BookingHandler) BookTicket(ctx *fiber.Ctx) error {
	var req request.BookTicket
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	booking, err := h.Usecase.Book(ctx.UserContext(), account(ctx), req.TrainID, req.Seats)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error book ticket: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, response.FromBooking(booking), "booking successful")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	bookings, err := h.Usecase.ListBookings(ctx.UserContext(), account(ctx))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	resp := make([]response.BookedTicket, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, response.FromBooking(b))
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	bookingID, err := ctx.ParamsInt("id")
	if err != nil || bookingID <= 0 {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse booking id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse booking id"))
	}

	receipt, err := h.Usecase.Cancel(ctx.UserContext(), account(ctx), int64(bookingID))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, receipt, "booking cancelled")
}

// ConsumeBookingEvent writes the passenger notification for a booking event.
// Returning an error hands the message to the poison queue.
func (h *BookingHandler) ConsumeBookingEvent(msg *message.Message) error {
	var event request.BookingEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal booking event: %v", err))
		return err
	}

	if err := h.Validator.Struct(event); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate booking event: %v", err))
		return err
	}

	switch event.Event {
	case usecases.EventBookingConfirmed:
		h.Log.Ctx(msg.Context()).Info(fmt.Sprintf("notify %s: booking %d confirmed on train %d, %d seats, total %d",
			event.Username, event.BookingID, event.TrainID, event.Seats, event.Amount))
	case usecases.EventBookingCancelled:
		h.Log.Ctx(msg.Context()).Info(fmt.Sprintf("notify %s: booking %d cancelled, refund %d of %d",
			event.Username, event.BookingID, event.Refund, event.Amount))
	default:
		h.Log.Ctx(msg.Context()).Warn(fmt.Sprintf("unknown booking event %q", event.Event))
	}

	return nil
}
