package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the handlers served by the API.
type Handlers struct {
	Flights  *FlightHandler
	Bookings *BookingHandler
	Info     *InfoHandler
}

// RegisterRoutes registers all API routes. Meta endpoints and the API docs
// live at the root, the API itself under /api/v1.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", Health)
	e.GET("/info", h.Info.Info)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.GET("", h.Flights.SearchFlights)
	flights.POST("/search", h.Flights.SearchFlightsBody)

	bookings := api.Group("/bookings/:bookingId")
	bookings.GET("/services", h.Bookings.ListServices)
	bookings.GET("/services/:serviceId", h.Bookings.GetService)
}

// Configure installs the binder and error handler every route relies on.
func Configure(e *echo.Echo, eh *ErrorHandler) {
	e.Binder = &RequestBinder{}
	e.HTTPErrorHandler = eh.Handle
}
