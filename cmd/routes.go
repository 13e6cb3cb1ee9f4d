package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()

	mux.Get("/api/health", standardMiddleware.ThenFunc(app.healthCheck))

	// Providers
	mux.Post("/api/providers/register", standardMiddleware.ThenFunc(app.providerHandler.RegisterProvider))
	mux.Get("/api/providers/categories", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/api/providers/nearby", standardMiddleware.ThenFunc(app.providerHandler.GetNearbyProviders))
	mux.Get("/api/providers/dashboard/:phone", standardMiddleware.ThenFunc(app.providerHandler.GetProviderByPhone))
	mux.Get("/api/providers/:id/bookings", standardMiddleware.ThenFunc(app.bookingHandler.GetBookingsByProviderID))
	mux.Post("/api/providers/:id/deactivate", standardMiddleware.ThenFunc(app.providerHandler.DeactivateProvider))
	mux.Get("/api/providers/:id", standardMiddleware.ThenFunc(app.providerHandler.GetProviderByID))

	// Bookings
	mux.Post("/api/bookings", standardMiddleware.ThenFunc(app.bookingHandler.CreateBooking))
	mux.Get("/api/bookings/user/:user_id", standardMiddleware.ThenFunc(app.bookingHandler.GetBookingsByUserID))
	mux.Put("/api/bookings/:id/status", standardMiddleware.ThenFunc(app.bookingHandler.UpdateBookingStatus))
	mux.Get("/api/bookings/:id", standardMiddleware.ThenFunc(app.bookingHandler.GetBookingByID))

	// Reviews
	mux.Post("/api/reviews", standardMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/api/reviews/provider/:provider_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByProviderID))
	mux.Get("/api/reviews/booking/:booking_id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewByBookingID))

	// Chat
	mux.Get("/ws", standardMiddleware.ThenFunc(app.WebSocketHandler))
	mux.Post("/api/chat", standardMiddleware.ThenFunc(app.messageHandler.CreateMessage))
	mux.Get("/api/chat/:booking_id", standardMiddleware.ThenFunc(app.messageHandler.GetMessagesByBookingID))

	return standardMiddleware.Then(mux)
}
