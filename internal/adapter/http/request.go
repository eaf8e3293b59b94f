// Package http is the REST adapter of the service: request binding and
// validation, handlers, routes and the error handler that turns every
// failure into an error envelope.
package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flightsearch-app/internal/domain"
	"github.com/flight-search/flightsearch-app/internal/validation"
)

// BookingIDPattern is the registered name of the booking id pattern.
const BookingIDPattern = "bookingId"

// ServicesParams identifies a booking.
type ServicesParams struct {
	BookingID string `param:"bookingId" validate:"pattern=bookingId"`
}

func (p *ServicesParams) bindPath(b *echo.ValueBinder) {
	b.String("bookingId", &p.BookingID)
}

// ServiceParams identifies one service of a booking.
type ServiceParams struct {
	BookingID string `param:"bookingId" validate:"pattern=bookingId"`
	ServiceID string `param:"serviceId" validate:"size=3:"`
}

func (p *ServiceParams) bindPath(b *echo.ValueBinder) {
	b.String("bookingId", &p.BookingID).
		String("serviceId", &p.ServiceID)
}

// FlightQuery is the query string of GET /api/v1/flights.
type FlightQuery struct {
	Origin        string            `query:"origin" validate:"size=3:3"`
	Destination   string            `query:"destination" validate:"size=3:3"`
	DepartureDate string            `query:"departureDate"`
	ReturnDate    string            `query:"returnDate"`
	FlightType    domain.FlightType `query:"flightType"`
}

func (q *FlightQuery) requiredQuery() []string {
	return []string{"origin", "destination"}
}

func (q *FlightQuery) bindQuery(b *echo.ValueBinder) {
	b.String("origin", &q.Origin).
		String("destination", &q.Destination).
		String("departureDate", &q.DepartureDate).
		String("returnDate", &q.ReturnDate).
		BindUnmarshaler("flightType", &q.FlightType)
}

// Criteria converts the query to search criteria.
func (q FlightQuery) Criteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        strings.ToUpper(q.Origin),
		Destination:   strings.ToUpper(q.Destination),
		DepartureDate: q.DepartureDate,
		ReturnDate:    q.ReturnDate,
		FlightType:    q.FlightType,
	}
}

// SearchFlightsRequest is the body of POST /api/v1/flights/search.
// A returnDate requires a departureDate.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "FRA")
	Origin string `json:"origin" validate:"notblank,size=3:3" example:"FRA"`

	// Destination is the IATA code of the arrival airport (e.g., "MSP")
	Destination string `json:"destination" validate:"notblank,size=3:3" example:"MSP"`

	// DepartureDate must equal the departureDateTime of a flight
	DepartureDate string `json:"departureDate,omitempty" example:"2025-01-01T08:00:00Z"`

	// ReturnDate must equal the arrivalDateTime of a flight
	ReturnDate string `json:"returnDate,omitempty"`

	// FlightType is "direct" or "segmented"
	FlightType domain.FlightType `json:"flightType,omitempty" swaggertype:"string" enums:"direct,segmented"`

	// MaxResults lowers the number of flights returned
	MaxResults *int `json:"maxResults,omitempty" validate:"omitempty,positive,max=10" example:"5"`
}

// AreValid implements validation.ConditionalValues.
func (r SearchFlightsRequest) AreValid() bool {
	return r.ReturnDate == "" || r.DepartureDate != ""
}

// Criteria converts the body to search criteria.
func (r SearchFlightsRequest) Criteria() domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:        strings.ToUpper(strings.TrimSpace(r.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(r.Destination)),
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		FlightType:    r.FlightType,
	}
	if r.MaxResults != nil {
		criteria.MaxResults = *r.MaxResults
	}
	return criteria
}

// NewValidator returns a validator configured for the request types of this package.
func NewValidator() (*validation.Validator, error) {
	v := validation.New()
	if err := v.RegisterPattern(BookingIDPattern, `^[a-zA-Z0-9]{6}$`); err != nil {
		return nil, err
	}
	v.RegisterConditionalValues(SearchFlightsRequest{})
	return v, nil
}
