package usecase

import (
	"sort"

	"github.com/flight-search/flightsearch-app/internal/domain"
)

// SortByDeparture orders flights by their departureDateTime text, earliest
// first. ISO 8601 instants in the same zone sort correctly as strings.
// Ties keep their input order. The slice is sorted in place.
func SortByDeparture(flights []domain.FlightItem) {
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].DepartureDateTime < flights[j].DepartureDateTime
	})
}

// Limit returns at most n flights.
func Limit(flights []domain.FlightItem, n int) []domain.FlightItem {
	if n >= 0 && len(flights) > n {
		return flights[:n]
	}
	return flights
}
