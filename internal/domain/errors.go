package domain

import (
	"fmt"

	"github.com/flight-search/flightsearch-app/internal/apperror"
)

// BookingNotFoundError is raised when no booking has the requested id.
type BookingNotFoundError struct {
	BookingID string
}

func (e *BookingNotFoundError) Error() string {
	return fmt.Sprintf("Booking for provided %s was not found", e.BookingID)
}

// ErrorCode implements apperror.NotFoundSignal.
func (e *BookingNotFoundError) ErrorCode() apperror.ErrorCode { return apperror.DataNotFound }

// ServiceNotFoundError is raised when a booking has no service with the requested id.
type ServiceNotFoundError struct {
	BookingID string
	ServiceID string
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("Service for provided %s was not found in the %s booking", e.ServiceID, e.BookingID)
}

// ErrorCode implements apperror.NotFoundSignal.
func (e *ServiceNotFoundError) ErrorCode() apperror.ErrorCode { return apperror.DataNotFound }

// FlightsNotFoundError is raised when a search matches no flight.
type FlightsNotFoundError struct{}

func (e *FlightsNotFoundError) Error() string {
	return "Flight for provided parameters was not found"
}

// ErrorCode implements apperror.NotFoundSignal.
func (e *FlightsNotFoundError) ErrorCode() apperror.ErrorCode { return apperror.DataNotFound }

var (
	_ apperror.NotFoundSignal = (*BookingNotFoundError)(nil)
	_ apperror.NotFoundSignal = (*ServiceNotFoundError)(nil)
	_ apperror.NotFoundSignal = (*FlightsNotFoundError)(nil)
)
