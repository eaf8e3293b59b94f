package usecase

import (
	"strings"

	"github.com/flight-search/flightsearch-app/internal/domain"
)

// ApplyFilters returns the flights matching criteria, in their original order.
//
// Behavior:
//   - Origin and destination always filter, ignoring case
//   - DepartureDate must equal departureDateTime and ReturnDate must equal
//     arrivalDateTime, ignoring case; empty values do not filter
//   - An empty FlightType does not filter
//   - Does NOT mutate the input slice
func ApplyFilters(flights []domain.FlightItem, criteria domain.SearchCriteria) []domain.FlightItem {
	result := make([]domain.FlightItem, 0, len(flights))
	for _, f := range flights {
		if passesAllFilters(f, criteria) {
			result = append(result, f)
		}
	}
	return result
}

func passesAllFilters(f domain.FlightItem, c domain.SearchCriteria) bool {
	if !strings.EqualFold(f.Origin, c.Origin) || !strings.EqualFold(f.Destination, c.Destination) {
		return false
	}
	if c.DepartureDate != "" && !strings.EqualFold(f.DepartureDateTime, c.DepartureDate) {
		return false
	}
	if c.ReturnDate != "" && !strings.EqualFold(f.ArrivalDateTime, c.ReturnDate) {
		return false
	}
	if c.FlightType != "" && f.FlightType != c.FlightType {
		return false
	}
	return true
}
