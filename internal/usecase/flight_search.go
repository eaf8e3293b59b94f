package usecase

import (
	"context"

	"github.com/flight-search/flightsearch-app/internal/domain"
)

//go:generate mockgen -source=flight_search.go -destination=mock_flight_search.go -package=usecase

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search filters the catalogue by criteria, orders the matches by
	// departure and caps them. It returns *domain.FlightsNotFoundError
	// instead of an empty result.
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightItem, error)
}

type flightSearchUseCase struct {
	flights []domain.FlightItem
	config  Config
}

// NewFlightSearchUseCase creates a FlightSearchUseCase over the given flights.
// If config is nil, DefaultConfig is used.
func NewFlightSearchUseCase(flights []domain.FlightItem, config *Config) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil && config.MaxResults > 0 {
		cfg.MaxResults = config.MaxResults
	}
	return &flightSearchUseCase{flights: flights, config: cfg}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := ApplyFilters(uc.flights, criteria)
	SortByDeparture(found)
	found = Limit(found, uc.config.limitFor(criteria))

	if len(found) == 0 {
		return nil, &domain.FlightsNotFoundError{}
	}
	return found, nil
}
