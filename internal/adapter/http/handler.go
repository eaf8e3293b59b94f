package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flightsearch-app/internal/adapter/http/response"
	"github.com/flight-search/flightsearch-app/internal/usecase"
	"github.com/flight-search/flightsearch-app/internal/validation"
)

// FlightHandler handles the flight search endpoints.
type FlightHandler struct {
	useCase   usecase.FlightSearchUseCase
	validator *validation.Validator
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(uc usecase.FlightSearchUseCase, v *validation.Validator) *FlightHandler {
	return &FlightHandler{useCase: uc, validator: v}
}

// SearchFlights handles GET /api/v1/flights
//
// @Summary Find flights
// @Description Flights between two airports ordered by departure
// @Tags flights
// @Produce json
// @Param origin query string true "IATA code of the departure airport" minlength(3) maxlength(3)
// @Param destination query string true "IATA code of the arrival airport" minlength(3) maxlength(3)
// @Param departureDate query string false "Exact departure date time"
// @Param returnDate query string false "Exact arrival date time"
// @Param flightType query string false "Flight type" Enums(direct, segmented)
// @Success 200 {array} SwaggerFlight
// @Failure 400 {object} SwaggerErrorMessage "Invalid parameters"
// @Failure 404 {object} SwaggerErrorMessage "No flight found"
// @Router /api/v1/flights [get]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var q FlightQuery
	if err := c.Bind(&q); err != nil {
		return err
	}
	if err := h.validator.ValidateParams(q); err != nil {
		return err
	}

	flights, err := h.useCase.Search(c.Request().Context(), q.Criteria())
	if err != nil {
		return err
	}
	return response.Flights(c, flights)
}

// SearchFlightsBody handles POST /api/v1/flights/search
//
// @Summary Search flights
// @Description Flights matching the search body ordered by departure
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {array} SwaggerFlight
// @Failure 400 {object} SwaggerErrorMessage "Malformed or invalid body"
// @Failure 404 {object} SwaggerErrorMessage "No flight found"
// @Failure 415 {object} SwaggerErrorMessage "Unsupported content type"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlightsBody(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	flights, err := h.useCase.Search(c.Request().Context(), req.Criteria())
	if err != nil {
		return err
	}
	return response.Flights(c, flights)
}

// BookingHandler handles the booking service endpoints.
type BookingHandler struct {
	bookings  usecase.BookingService
	validator *validation.Validator
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings usecase.BookingService, v *validation.Validator) *BookingHandler {
	return &BookingHandler{bookings: bookings, validator: v}
}

// ListServices handles GET /api/v1/bookings/:bookingId/services
//
// @Summary List booking services
// @Tags bookings
// @Produce json
// @Param bookingId path string true "Booking id, six letters or digits"
// @Success 200 {array} domain.ServiceItem
// @Failure 400 {object} SwaggerErrorMessage "Invalid booking id"
// @Failure 404 {object} SwaggerErrorMessage "Booking not found"
// @Router /api/v1/bookings/{bookingId}/services [get]
func (h *BookingHandler) ListServices(c echo.Context) error {
	var p ServicesParams
	if err := c.Bind(&p); err != nil {
		return err
	}
	if err := h.validator.ValidateParams(p); err != nil {
		return err
	}

	services, err := h.bookings.ListServices(c.Request().Context(), p.BookingID)
	if err != nil {
		return err
	}
	return response.Services(c, services)
}

// GetService handles GET /api/v1/bookings/:bookingId/services/:serviceId
//
// @Summary Get a booking service
// @Tags bookings
// @Produce json
// @Param bookingId path string true "Booking id, six letters or digits"
// @Param serviceId path string true "Service id, at least three characters"
// @Success 200 {object} domain.ServiceItem
// @Failure 400 {object} SwaggerErrorMessage "Invalid parameters"
// @Failure 404 {object} SwaggerErrorMessage "Booking or service not found"
// @Router /api/v1/bookings/{bookingId}/services/{serviceId} [get]
func (h *BookingHandler) GetService(c echo.Context) error {
	var p ServiceParams
	if err := c.Bind(&p); err != nil {
		return err
	}
	if err := h.validator.ValidateParams(p); err != nil {
		return err
	}

	service, err := h.bookings.GetService(c.Request().Context(), p.BookingID, p.ServiceID)
	if err != nil {
		return err
	}
	return response.Service(c, service)
}

// InfoHandler reports the running build.
type InfoHandler struct {
	info response.InfoResponse
}

// NewInfoHandler creates an InfoHandler. version is expected to be valid semver.
func NewInfoHandler(name, version, commitID string) *InfoHandler {
	return &InfoHandler{info: response.InfoResponse{
		Name:     name,
		Version:  response.VersionInfo{Service: version},
		CommitID: commitID,
	}}
}

// Info handles GET /info
//
// @Summary Build information
// @Tags meta
// @Produce json
// @Success 200 {object} response.InfoResponse
// @Router /info [get]
func (h *InfoHandler) Info(c echo.Context) error {
	return response.Info(c, h.info)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func Health(c echo.Context) error {
	return response.Health(c)
}
