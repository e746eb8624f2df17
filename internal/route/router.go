package router

import (
	accountHandler "railway-reservation/internal/module/account/handler"
	bookingHandler "railway-reservation/internal/module/booking/handler"
	catalogHandler "railway-reservation/internal/module/catalog/handler"
	"railway-reservation/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Account *accountHandler.AccountHandler
	Catalog *catalogHandler.CatalogHandler
	Booking *bookingHandler.BookingHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/register", h.Account.Register)
	v1.Post("/login", h.Account.Login)
	v1.Get("/trains", h.Catalog.ListTrains)
	v1.Get("/trains/:id", h.Catalog.GetTrain)
	v1.Get("/trains/:id/quote", h.Booking.QuoteTicket)

	// session routes
	v1.Post("/logout", m.ValidateToken, h.Account.Logout)
	v1.Get("/bookings", m.ValidateToken, h.Booking.ShowBookings)
	v1.Post("/bookings", m.ValidateToken, h.Booking.BookTicket)
	v1.Post("/bookings/:id/cancel", m.ValidateToken, h.Booking.CancelBooking)

	return app

}
